// Package bfs defines tunable options and error definitions for the
// breadth-first knight searches over a board.Board.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/knightpath/board"
)

// Unreachable is the sentinel move count returned when no knight path
// connects the start and end squares. It is a valid outcome, not an error.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("bfs: board is nil")
)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called whenever a square is first discovered and queued,
	// with its distance (in moves) from that search's seed. In Bidirectional
	// it fires for both frontiers.
	OnEnqueue func(pos board.Position, moves int)

	// OnDequeue is called immediately before a queued square is expanded.
	OnDequeue func(pos board.Position, moves int)

	// OnProgress, if set, is called by Bidirectional once per alternating
	// iteration with the two frontier sizes and the two visited-map sizes.
	// Plain BFS never calls it.
	OnProgress func(iteration, fwdQueue, bwdQueue, fwdSeen, bwdSeen int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(board.Position, int) {},
		OnDequeue: func(board.Position, int) {},
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

// WithOnEnqueue registers a callback to run when a square is discovered.
func WithOnEnqueue(fn func(pos board.Position, moves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run before a square is expanded.
func WithOnDequeue(fn func(pos board.Position, moves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnProgress registers a per-iteration statistics callback for
// Bidirectional.
func WithOnProgress(fn func(iteration, fwdQueue, bwdQueue, fwdSeen, bwdSeen int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
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
