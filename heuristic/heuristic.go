// Package heuristic provides an admissible lower bound on knight-move
// distance, used by the astar package to order and prune its search.
//
// Admissibility
//
//	Estimate never exceeds the true minimum number of knight moves between
//	two squares on an unobstructed board. Obstacles can only lengthen the
//	true distance, so the estimate remains a valid lower bound on any board
//	the knightpath packages construct. This property is the optimality
//	precondition for A* and IDA*: weakening it silently breaks both.
//
// Derivation
//
//	A knight changes each coordinate by at most 2 per move, so covering a
//	displacement of (dr, dc) takes at least max(⌈dr/2⌉, ⌈dc/2⌉) moves. That
//	bound is wrong for three tiny displacements where parity forces detours,
//	handled as explicit special cases below.
//
// Complexity: O(1) per call, no allocation.
package heuristic

import "github.com/katalvlaran/knightpath/board"

// Estimate returns a lower bound on the number of knight moves from one
// square to another, ignoring obstacles.
//
// Special cases (where the general formula would be wrong):
//   - (0,0) → 0: already there.
//   - (0,1) or (1,0) → 3: a single orthogonal step takes three moves.
//   - (1,1) → 2: a single diagonal step takes two moves.
//
// General case: max(⌈dr/2⌉, ⌈dc/2⌉).
func Estimate(from, to board.Position) int {
	dr := abs(from.Row - to.Row)
	dc := abs(from.Col - to.Col)

	switch {
	case dr == 0 && dc == 0:
		return 0
	case dr == 0 && dc == 1, dr == 1 && dc == 0:
		return 3
	case dr == 1 && dc == 1:
		return 2
	}

	return max((dr+1)/2, (dc+1)/2)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
