// Package bfs provides the two breadth-first knight searches of knightpath:
// plain BFS and a bidirectional (meet-in-the-middle) variant, both running
// over the implicit knight-move graph defined by a board.Board.
//
// What
//
//   - BFS(b, start, end): exhaustive frontier expansion in non-decreasing
//     move count. Optimal on the unweighted knight graph; the baseline every
//     other knightpath strategy is checked against.
//   - Bidirectional(b, start, end): two frontiers grown alternately from
//     start and end, returning the summed move counts at the first
//     cross-frontier intersection.
//   - Both return the square count as int, with Unreachable (-1) when no
//     path exists, and support cancellation plus discovery hooks.
//
// Why
//
//   - BFS for guaranteed minimality and as ground truth in tests.
//   - Bidirectional roughly halves the effective search radius, which pays
//     off on small boards where both frontiers stay cheap.
//
// Known caveat
//
//	Bidirectional accepts the first intersection found while alternating
//	sides, without confirming that no shorter meeting point exists at the
//	same joint depth. On some board topologies the reported total exceeds
//	the true minimum. This divergence is deliberate, documented on the
//	function, and pinned by a regression test rather than corrected.
//
// Seed squares
//
//	Neither function validates start or end against the board: BFS
//	recognizes end on generation before any validity check, while
//	Bidirectional requires neighbors to pass board.IsValid before the
//	intersection test. See each function's doc for the exact semantics.
//
// Complexity (R = rows, C = cols)
//
//   - Time:   O(R×C) for either search (8 neighbors per square).
//   - Memory: O(R×C) for visited state.
//
// Usage
//
//	b, _ := board.New(8, 8, board.Position{Row: 3, Col: 3})
//	moves, err := bfs.BFS(b, board.Position{Row: 0, Col: 0}, board.Position{Row: 7, Col: 6})
//	if err != nil {
//	    // ErrNilBoard or a context error
//	}
//	if moves == bfs.Unreachable {
//	    // no path — a valid outcome, not an error
//	}
//
// Options
//
//   - WithContext(ctx):    cancellation via context.Context.
//   - WithOnEnqueue(fn):   hook on square discovery.
//   - WithOnDequeue(fn):   hook before square expansion.
//   - WithOnProgress(fn):  per-iteration frontier statistics (Bidirectional only).
package bfs
