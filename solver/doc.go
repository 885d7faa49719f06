// Package solver is the entry point of knightpath: it builds the board
// model once and dispatches solve calls to one of the four search
// strategies, with automatic selection, wall-clock timing, and optional
// structured logging.
//
// What
//
//   - Method: a closed enumeration (Auto, BFS, Bidirectional, AStar,
//     IDAStar) dispatched via an exhaustive switch; ParseMethod converts
//     the canonical strings and rejects everything else with
//     ErrUnknownMethod — never a silent fallback.
//   - Solver: one board + bishop configuration; the line-of-sight set is
//     built in New and shared read-only across any number of Solve calls,
//     so a Solver may be used from multiple goroutines.
//   - Result: minimum move count (Unreachable, -1, when no path exists —
//     a conclusive outcome, not an error) and the elapsed wall-clock time.
//
// Auto selection
//
//	Boards no larger than 8×8 in both dimensions get Bidirectional (its
//	halved radius wins while frontiers are tiny); everything larger gets
//	AStar (goal direction wins once the board is big enough for BFS
//	frontiers to balloon). Callers needing the guaranteed minimum on a
//	small board should request BFS explicitly, since Bidirectional may
//	overshoot (see bfs.Bidirectional).
//
// Input hygiene
//
//	Start and end squares are not validated: out-of-bounds or blocked
//	seed squares produce whatever the underlying strategy's expansion
//	yields. Check board.IsValid on both beforehand if strict inputs
//	matter.
//
// Usage
//
//	s, err := solver.New(10, 21, board.Position{Row: 4, Col: 6},
//	    solver.WithLogger(logger))
//	if err != nil { ... }
//	res, err := s.Solve(board.Position{Row: 0, Col: 10}, board.Position{Row: 9, Col: 4}, solver.BFS)
//	if err != nil { ... }
//	fmt.Println(res.Moves, res.Elapsed)
//
// Options
//
//   - WithContext(ctx): threaded into every dispatched strategy.
//   - WithLogger(l):    zap logger for selection, progress, and results;
//     defaults to zap.NewNop().
package solver
