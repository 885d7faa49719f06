// Package bfs provides breadth-first knight searches over a board.Board:
// plain single-frontier BFS (the optimality baseline) and a meet-in-the-middle
// bidirectional variant.
package bfs

import (
	"github.com/katalvlaran/knightpath/board"
)

// queueItem pairs a square with its move count from the search seed.
type queueItem struct {
	pos   board.Position
	moves int
}

// walker encapsulates mutable BFS state.
type walker struct {
	board   *board.Board
	opts    Options
	end     board.Position
	queue   []queueItem
	visited map[board.Position]struct{}
}

// BFS returns the minimum number of knight moves from start to end on b,
// or Unreachable (-1) if no path exists. BFS explores squares in
// non-decreasing move count, so the first time end is generated the count is
// optimal; every other strategy in knightpath is measured against it.
//
// The end square is recognized the moment it is generated, before any
// validity check, so an end inside the bishop's line of sight is still
// reported as reached. The start square is likewise never validity-checked;
// only generated neighbors are gated through board.IsValid.
//
// Returns ErrNilBoard for a nil board, or the context error on cancellation.
//
// Complexity (R = rows, C = cols):
//   - Time:   O(R×C) — each square enqueued at most once, 8 neighbors each.
//   - Memory: O(R×C) for the visited set and queue.
func BFS(b *board.Board, start, end board.Position, opts ...Option) (int, error) {
	if b == nil {
		return 0, ErrNilBoard
	}
	if start == end {
		return 0, nil
	}
	o := buildOptions(opts)

	w := &walker{
		board:   b,
		opts:    o,
		end:     end,
		queue:   make([]queueItem, 0, 64),
		visited: make(map[board.Position]struct{}, 64),
	}
	w.enqueue(start, 0)

	return w.loop()
}

// enqueue marks pos visited at the given move count, fires OnEnqueue, and
// appends it to the queue.
func (w *walker) enqueue(pos board.Position, moves int) {
	w.visited[pos] = struct{}{}
	w.opts.OnEnqueue(pos, moves)
	w.queue = append(w.queue, queueItem{pos: pos, moves: moves})
}

// loop processes the queue until the end square is generated, the queue
// drains, or the context is cancelled.
func (w *walker) loop() (int, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.pos, item.moves)

		for _, d := range board.KnightOffsets {
			next := item.pos.Offset(d[0], d[1])

			// End is recognized on generation, before IsValid.
			if next == w.end {
				return item.moves + 1, nil
			}
			if !w.board.IsValid(next) {
				continue
			}
			if _, seen := w.visited[next]; seen {
				continue
			}
			w.enqueue(next, item.moves+1)
		}
	}

	// Frontier exhausted without generating end: no path exists.
	return Unreachable, nil
}
