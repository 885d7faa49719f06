// Package board provides the shared board model for knightpath:
// a rectangular grid, a single bishop, and the bishop's precomputed
// diagonal line of sight, plus the knight move offsets.
//
// What
//
//   - Position: a comparable (row, col) value type usable as a map key.
//   - Board: immutable rows×cols bounds plus the blocked-square set,
//     constructed once per bishop placement.
//   - IsValid(p): on-board AND outside the bishop's line of sight — the
//     single transit-legality predicate every search strategy consults.
//   - KnightOffsets: the eight fixed knight (Δrow, Δcol) moves.
//
// Why
//
//	Every search strategy in bfs/ and astar/ expands the same implicit
//	knight-move graph. Centralizing bounds, obstacle lookup, and move
//	offsets here keeps the strategies free of board bookkeeping and lets
//	one obstacle set be shared across any number of solves.
//
// Line-of-sight semantics
//
//	The bishop sees its own square plus every square along the four
//	diagonal unit vectors until the board edge. No piece-blocking logic
//	exists: the knight is the only other piece and it is never "on" the
//	board during a solve, so rays always reach the edge.
//
// Seed squares
//
//	IsValid gates only generated neighbors. The start and end squares of
//	a solve are deliberately never checked against the obstacle set; a
//	caller wanting strict inputs should check IsValid on both before
//	solving.
//
// Complexity (R = rows, C = cols)
//
//   - New:     O(R+C) time, O(R+C) memory for the line-of-sight set.
//   - IsValid: O(1) per query.
//
// Errors
//
//   - ErrBadDimensions if rows < 1 or cols < 1.
//   - ErrBishopOffBoard if the bishop is outside the board.
package board
