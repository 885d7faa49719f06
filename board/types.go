// Package board defines core types, sentinel errors, and constant move data
// for the board subpackage of github.com/katalvlaran/knightpath.
package board

import (
	"errors"
)

// Sentinel errors for board construction.
var (
	// ErrBadDimensions indicates the board has fewer than one row or column.
	ErrBadDimensions = errors.New("board: dimensions must be at least 1×1")
	// ErrBishopOffBoard indicates the bishop position lies outside the board.
	ErrBishopOffBoard = errors.New("board: bishop position is off the board")
)

// Position is a single square on the board, addressed as (row, column).
// It is a comparable value type: structurally equal Positions compare equal
// and may be used directly as map keys and set members.
// A Position is never mutated after construction.
type Position struct {
	Row, Col int
}

// Offset returns the Position displaced by (dr, dc). The receiver is unchanged.
// Complexity: O(1).
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// KnightOffsets lists the eight fixed (Δrow, Δcol) knight moves.
// The slice is constant data: search packages range over it but never modify it.
var KnightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// diagonals lists the four diagonal unit vectors used to trace the bishop's
// line of sight.
var diagonals = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
