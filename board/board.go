// Package board models a rectangular chessboard occupied by a single bishop,
// exposing the validity checks the knightpath search packages are built on.
//
// The bishop blocks every square it can see along its four diagonals, with no
// range limit other than the board edge (there are no other pieces to obstruct
// the rays). The set of blocked squares is computed once at construction and
// reused for every query, so IsValid is an O(1) hash lookup.
package board

// Board is an immutable rectangular board with a bishop's precomputed line of
// sight. A Board is safe for concurrent readers once constructed.
type Board struct {
	rows, cols  int
	bishop      Position
	lineOfSight map[Position]struct{}
}

// New constructs a Board of rows×cols squares with a bishop at bishop.
// Returns ErrBadDimensions if either dimension is below 1, or
// ErrBishopOffBoard if the bishop lies outside [0,rows)×[0,cols).
// Complexity: O(rows+cols) time to trace the four diagonal rays.
func New(rows, cols int, bishop Position) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	b := &Board{rows: rows, cols: cols, bishop: bishop}
	if !b.InBounds(bishop) {
		return nil, ErrBishopOffBoard
	}
	b.lineOfSight = b.traceLineOfSight()

	return b, nil
}

// traceLineOfSight walks each of the four diagonal unit vectors outward from
// the bishop, collecting every square until a step leaves the board.
// The bishop's own square is always included.
func (b *Board) traceLineOfSight() map[Position]struct{} {
	los := make(map[Position]struct{}, b.rows+b.cols)
	los[b.bishop] = struct{}{}
	for _, d := range diagonals {
		p := b.bishop
		for {
			p = p.Offset(d[0], d[1])
			if !b.InBounds(p) {
				break
			}
			los[p] = struct{}{}
		}
	}

	return los
}

// Rows returns the number of rows on the board.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns on the board.
func (b *Board) Cols() int { return b.cols }

// Bishop returns the bishop's position.
func (b *Board) Bishop() Position { return b.bishop }

// InBounds reports whether p lies within [0,rows)×[0,cols).
// Complexity: O(1).
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// InLineOfSight reports whether p is one of the squares the bishop sees,
// including the bishop's own square.
// Complexity: O(1).
func (b *Board) InLineOfSight(p Position) bool {
	_, ok := b.lineOfSight[p]
	return ok
}

// IsValid reports whether a knight may stand on p: on the board and outside
// the bishop's line of sight. The search packages apply IsValid only to
// generated neighbors, never to the seed start/end squares — vetting those
// is the caller's responsibility.
// Complexity: O(1).
func (b *Board) IsValid(p Position) bool {
	return b.InBounds(p) && !b.InLineOfSight(p)
}

// LineOfSightSize returns the number of squares the bishop blocks.
func (b *Board) LineOfSightSize() int { return len(b.lineOfSight) }

// LineOfSight returns a copy of the blocked-square set. The Board's internal
// set is never exposed, preserving immutability.
// Complexity: O(rows+cols).
func (b *Board) LineOfSight() []Position {
	out := make([]Position, 0, len(b.lineOfSight))
	for p := range b.lineOfSight {
		out = append(out, p)
	}

	return out
}
