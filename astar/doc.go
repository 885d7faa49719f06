// Package astar provides the two heuristic knight searches of knightpath:
// A* and IDA*, both guided by the admissible lower bound in package
// heuristic and both guaranteed to match the bfs.BFS minimum.
//
// What
//
//   - AStar(b, start, end): best-first search over a container/heap open set
//     ordered by f = g + h, with a g-score map and lazy decrease-key.
//   - IDAStar(b, start, end): iterative-deepening depth-first probes under a
//     growing f-bound, holding only the current path in memory.
//   - Both return the move count as int, with Unreachable (-1) when no path
//     exists, and support cancellation plus an expansion hook.
//
// Why
//
//   - A* dominates plain BFS in expanded-square count on large boards
//     because the heuristic steers the frontier toward the goal.
//   - IDA* trades A*'s O(rows×cols) frontier memory for repeated
//     re-exploration: its working set is just the current path.
//
// Optimality
//
//	Both algorithms are optimal if and only if the heuristic never
//	overestimates the true remaining distance. heuristic.Estimate ignores
//	the bishop entirely — obstacles can only lengthen the true cost — so
//	admissibility holds on every board this module constructs. The test
//	suites check both strategies against bfs.BFS as ground truth.
//
// Complexity (N = rows×cols)
//
//   - AStar:   O(N log N) time, O(N) memory.
//   - IDAStar: worst-case exponential re-expansion across iterations,
//     O(bound) memory for the path set.
//
// Usage
//
//	b, _ := board.New(40, 40, board.Position{Row: 20, Col: 20})
//	moves, err := astar.AStar(b, board.Position{Row: 0, Col: 0}, board.Position{Row: 39, Col: 39})
//	if err != nil {
//	    // ErrNilBoard or a context error
//	}
//	if moves == astar.Unreachable {
//	    // no path
//	}
//
// Options
//
//   - WithContext(ctx):  cancellation via context.Context.
//   - WithOnExpand(fn):  hook on square expansion (per probe entry in IDAStar).
package astar
