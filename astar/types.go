// Package astar defines options, sentinel errors, and the priority-queue
// plumbing for the heuristic knight searches over a board.Board.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/knightpath/board"
)

// Unreachable is the sentinel move count returned when no knight path
// connects the start and end squares. It is a valid outcome, not an error.
const Unreachable = -1

// Sentinel errors for A* / IDA* execution.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("astar: board is nil")
)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called each time a square is taken up for expansion, with
	// its g-score (moves from start). In IDAStar it fires on every probe
	// entry, so a square may be reported more than once across iterations.
	OnExpand func(pos board.Position, g int)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(board.Position, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback to run when a square is expanded.
func WithOnExpand(fn func(pos board.Position, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// nodeItem is one open-set entry: a square with its g-score (moves from
// start) and f-score (g plus heuristic to end).
type nodeItem struct {
	pos board.Position
	g   int
	f   int
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending, then g ascending.
// Relaxations push fresh entries rather than re-keying old ones; stale
// entries are recognized and skipped when popped (lazy decrease-key).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f-score, breaking ties on g-score so shallower entries with
// equal estimates are expanded first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].g < pq[j].g
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
