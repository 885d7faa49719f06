// Package astar provides the heuristic knight searches of knightpath: A*
// (goal-directed best-first search) and IDA* (iterative-deepening DFS with an
// f-bound), both driven by the admissible estimate in package heuristic.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/heuristic"
)

// runner holds the mutable state of a single A* execution.
type runner struct {
	board   *board.Board
	opts    Options
	end     board.Position
	open    nodePQ
	gScores map[board.Position]int
	closed  map[board.Position]struct{}
}

// AStar returns the minimum number of knight moves from start to end on b,
// or Unreachable (-1) if no path exists. The open set is ordered by
// f = g + heuristic.Estimate(pos, end); because the estimate never
// overestimates, the result always equals the BFS minimum while expanding
// far fewer squares on large boards.
//
// As in BFS, the end square is recognized the moment it is generated,
// before any validity check, and the start square is never validated.
//
// Returns ErrNilBoard for a nil board, or the context error on cancellation.
//
// Complexity (R = rows, C = cols, N = R×C):
//   - Time:   O(N log N) — each square expanded once, heap pushes per relaxation.
//   - Memory: O(N) for the g-score map, closed set, and open heap.
func AStar(b *board.Board, start, end board.Position, opts ...Option) (int, error) {
	// 1) Validate input and handle the reflexive case without any state.
	if b == nil {
		return 0, ErrNilBoard
	}
	if start == end {
		return 0, nil
	}
	o := buildOptions(opts)

	// 2) Seed the open set with start at g=0, f=h(start,end).
	r := &runner{
		board:   b,
		opts:    o,
		end:     end,
		open:    make(nodePQ, 0, 64),
		gScores: map[board.Position]int{start: 0},
		closed:  make(map[board.Position]struct{}, 64),
	}
	heap.Init(&r.open)
	heap.Push(&r.open, &nodeItem{pos: start, g: 0, f: heuristic.Estimate(start, end)})

	// 3) Run the expansion loop.
	return r.process()
}

// process pops open-set entries in f-order until end is generated or the
// open set drains.
func (r *runner) process() (int, error) {
	for r.open.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-r.opts.Ctx.Done():
			return 0, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.open).(*nodeItem)

		// Skip stale heap entries superseded by a better recorded g-score.
		if _, done := r.closed[item.pos]; done && r.gScores[item.pos] < item.g {
			continue
		}
		r.closed[item.pos] = struct{}{}
		r.opts.OnExpand(item.pos, item.g)

		if moves, found := r.relax(item); found {
			return moves, nil
		}
	}

	return Unreachable, nil
}

// relax generates the 8 knight moves of item, returning immediately if end
// is produced, and pushing every strictly improved neighbor onto the open
// set (lazy decrease-key: old entries are left behind and skipped later).
func (r *runner) relax(item *nodeItem) (int, bool) {
	for _, d := range board.KnightOffsets {
		next := item.pos.Offset(d[0], d[1])

		// End is recognized on generation, before IsValid.
		if next == r.end {
			return item.g + 1, true
		}
		if !r.board.IsValid(next) {
			continue
		}

		nextG := item.g + 1
		if best, seen := r.gScores[next]; seen && nextG >= best {
			continue
		}
		r.gScores[next] = nextG
		heap.Push(&r.open, &nodeItem{
			pos: next,
			g:   nextG,
			f:   nextG + heuristic.Estimate(next, r.end),
		})
	}

	return 0, false
}
