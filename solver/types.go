// Package solver defines the strategy enumeration, result type, options,
// and sentinel errors for the knightpath dispatcher.
package solver

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Unreachable is the sentinel move count signalling that no knight path
// exists. Callers must distinguish it (a valid, conclusive outcome) from a
// non-nil error (invalid input or cancellation).
const Unreachable = -1

// Sentinel errors for the dispatcher.
var (
	// ErrUnknownMethod is returned by ParseMethod and Solve for a method
	// outside the closed enumeration. There is no silent fallback.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrNilSolver is returned when Solve is called on a nil *Solver.
	ErrNilSolver = errors.New("solver: solver is nil")
)

// Method selects a search strategy. The zero value is Auto.
type Method int

const (
	// Auto picks Bidirectional for boards no larger than 8×8 in both
	// dimensions, and AStar otherwise.
	Auto Method = iota
	// BFS is plain breadth-first search: exhaustive and always minimal.
	BFS
	// Bidirectional is meet-in-the-middle BFS; fast on small boards but may
	// overshoot the minimum on some topologies (see bfs.Bidirectional).
	Bidirectional
	// AStar is heuristic best-first search; minimal and goal-directed.
	AStar
	// IDAStar is iterative-deepening A*; minimal with O(path) memory.
	IDAStar
)

// methodNames maps each Method to its canonical string form.
var methodNames = map[Method]string{
	Auto:          "auto",
	BFS:           "bfs",
	Bidirectional: "bidirectional_bfs",
	AStar:         "a_star",
	IDAStar:       "ida_star",
}

// String returns the canonical name of m, or "unknown" for values outside
// the enumeration.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return "unknown"
}

// ParseMethod converts a method name ("bfs", "bidirectional_bfs", "a_star",
// "ida_star", "auto") to its Method. Unknown names yield ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	for m, s := range methodNames {
		if s == name {
			return m, nil
		}
	}

	return 0, ErrUnknownMethod
}

// Result is the outcome of one solve: the minimum move count (Unreachable
// when no path exists) and the wall-clock time the dispatched strategy took.
type Result struct {
	Moves   int
	Elapsed time.Duration
}

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds Solver-level configuration shared by every Solve call.
type Options struct {
	// Ctx is threaded into each dispatched strategy for cancellation.
	Ctx context.Context

	// Logger receives solve-level events (strategy selection, progress,
	// results). Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a background context and nop logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// WithContext sets the context threaded into every dispatched strategy.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger used for solve-level events.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
