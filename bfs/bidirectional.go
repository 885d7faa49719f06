package bfs

import (
	"github.com/katalvlaran/knightpath/board"
)

// frontier is one side of the bidirectional search: a FIFO queue plus a map
// from discovered square to the best move count recorded by this side.
type frontier struct {
	queue   []queueItem
	visited map[board.Position]int
}

// newFrontier seeds a frontier with a single square at zero moves.
func newFrontier(seed board.Position) *frontier {
	return &frontier{
		queue:   []queueItem{{pos: seed}},
		visited: map[board.Position]int{seed: 0},
	}
}

// biWalker holds the two frontiers and shared search context.
type biWalker struct {
	board     *board.Board
	opts      Options
	fwd, bwd  *frontier
	iteration int
}

// Bidirectional returns the number of knight moves from start to end on b
// found by meet-in-the-middle search, or Unreachable (-1) when the two
// frontiers exhaust without touching. Each loop iteration pops and expands
// one square from each frontier; the first time a square generated by one
// side is found in the other side's visited map, the summed move counts are
// returned immediately.
//
// Accepting the first intersection is not always optimal: the opposite side
// may still hold a shorter route to a different meeting square at the same
// joint depth, so the returned count can exceed the BFS answer on some
// boards (one concrete 10×21 configuration is pinned in the test suite).
// The behavior is kept as-is; use BFS or astar.AStar when an exact minimum
// is required.
//
// Unlike plain BFS, neighbors here pass through board.IsValid before the
// intersection test, so an end square inside the bishop's line of sight is
// never reached from the forward side (it is still each side's own seed).
//
// Returns ErrNilBoard for a nil board, or the context error on cancellation.
//
// Complexity (R = rows, C = cols):
//   - Time:   O(R×C), with roughly half the effective search radius per side.
//   - Memory: O(R×C) across the two visited maps.
func Bidirectional(b *board.Board, start, end board.Position, opts ...Option) (int, error) {
	if b == nil {
		return 0, ErrNilBoard
	}
	if start == end {
		return 0, nil
	}
	o := buildOptions(opts)

	w := &biWalker{
		board: b,
		opts:  o,
		fwd:   newFrontier(start),
		bwd:   newFrontier(end),
	}

	return w.loop()
}

// loop alternates one step per frontier while both remain non-empty.
func (w *biWalker) loop() (int, error) {
	for len(w.fwd.queue) > 0 && len(w.bwd.queue) > 0 {
		// cancellation check (once per alternating iteration)
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		w.iteration++
		if w.opts.OnProgress != nil {
			w.opts.OnProgress(w.iteration,
				len(w.fwd.queue), len(w.bwd.queue),
				len(w.fwd.visited), len(w.bwd.visited))
		}

		// Forward step. A stale pop consumes the whole iteration: the
		// backward step is skipped too, not just the forward expansion.
		if total, met, stale := w.step(w.fwd, w.bwd); met {
			return total, nil
		} else if stale {
			continue
		}

		// Backward step.
		if total, met, _ := w.step(w.bwd, w.fwd); met {
			return total, nil
		}
	}

	return Unreachable, nil
}

// step pops one square from own, expands its knight moves, and reports a
// meeting with other if one occurs. stale is true when the popped entry has
// already been superseded by a better recorded move count.
func (w *biWalker) step(own, other *frontier) (total int, met, stale bool) {
	item := own.queue[0]
	own.queue = own.queue[1:]
	w.opts.OnDequeue(item.pos, item.moves)

	if best, ok := own.visited[item.pos]; ok && best < item.moves {
		return 0, false, true
	}

	for _, d := range board.KnightOffsets {
		next := item.pos.Offset(d[0], d[1])
		if !w.board.IsValid(next) {
			continue
		}
		best, seen := own.visited[next]
		if seen && item.moves+1 >= best {
			continue
		}
		own.visited[next] = item.moves + 1
		w.opts.OnEnqueue(next, item.moves+1)
		own.queue = append(own.queue, queueItem{pos: next, moves: item.moves + 1})

		// First cross-frontier intersection wins.
		if theirMoves, hit := other.visited[next]; hit {
			return item.moves + 1 + theirMoves, true, false
		}
	}

	return 0, false, false
}
