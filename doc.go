// Package knightpath computes minimum knight-move distances on a rectangular
// chessboard whose only other piece is a bishop blocking every square in its
// diagonal line of sight.
//
// 🐴 What is knightpath?
//
//	A small, focused search library offering four interchangeable strategies
//	over one shared board model:
//		• BFS                — exhaustive, always minimal; the ground truth
//		• Bidirectional BFS  — meet-in-the-middle; fast on small boards,
//		  documented to overshoot on some topologies
//		• A*                 — heuristic best-first; minimal and goal-directed
//		• IDA*               — iterative deepening; minimal with O(path) memory
//
// ✨ Why choose knightpath?
//
//   - Minimal API – build a Solver once, run any number of queries against it
//   - Strategy auto-selection – small boards get bidirectional BFS, large
//     boards get A*, or pick one explicitly
//   - Pure Go core – context cancellation, functional options, hooks for
//     observing every expansion
//   - Honest results – Unreachable (-1) is a conclusive answer, unknown
//     methods are an error, and the bidirectional caveat is documented and
//     test-pinned rather than papered over
//
// Everything is organized under five subpackages:
//
//	board/     — Position, bounds, bishop line of sight, knight move offsets
//	heuristic/ — admissible lower bound on knight distance
//	bfs/       — plain and bidirectional breadth-first search
//	astar/     — A* and IDA*
//	solver/    — Method enum, dispatcher, timing, logging
//
// Quick ASCII example (5×5, bishop b at (2,2), × its line of sight):
//
//	× . . . ×
//	. × . × .
//	. . b . .
//	. × . × .
//	× . . . ×
//
// A knight at (0,1) reaches (4,3) without ever standing on a × square:
//
//	s, _ := solver.New(5, 5, board.Position{Row: 2, Col: 2})
//	res, _ := s.Solve(board.Position{Row: 0, Col: 1}, board.Position{Row: 4, Col: 3}, solver.Auto)
//	fmt.Println(res.Moves)
//
// See each subpackage's doc.go for semantics, complexity, and caveats.
package knightpath
