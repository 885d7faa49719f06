// Package solver dispatches knight-path solves to one of the four search
// strategies (or auto-selects one from the board size), timing each call.
package solver

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/knightpath/astar"
	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/board"
)

// autoBoardLimit is the board-size threshold for Auto: boards with both
// dimensions at or below it get Bidirectional, larger boards get AStar.
const autoBoardLimit = 8

// progressLogInterval throttles bidirectional progress logging.
const progressLogInterval = time.Second

// Solver holds one Board (and therefore one precomputed line-of-sight set)
// and solves any number of start/end queries against it. The Board is
// read-only after construction, so a Solver is safe for concurrent Solve
// calls.
type Solver struct {
	board *board.Board
	opts  Options
}

// New builds a Solver for a rows×cols board with a bishop at bishop.
// The obstacle set is computed once here and reused by every Solve.
// Returns board.ErrBadDimensions or board.ErrBishopOffBoard on bad input.
func New(rows, cols int, bishop board.Position, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b, err := board.New(rows, cols, bishop)
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("solver ready",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("bishop_row", bishop.Row),
		zap.Int("bishop_col", bishop.Col),
		zap.Int("blocked_squares", b.LineOfSightSize()))

	return &Solver{board: b, opts: o}, nil
}

// Board returns the underlying board model.
func (s *Solver) Board() *board.Board { return s.board }

// Solve computes the minimum knight moves from start to end using method,
// resolving Auto from the board size first. The returned Result carries the
// move count (Unreachable when no path exists) and the wall-clock time the
// strategy took. A method outside the enumeration yields ErrUnknownMethod.
func (s *Solver) Solve(start, end board.Position, method Method) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSolver
	}

	resolved := s.resolve(method)
	log := s.opts.Logger.With(
		zap.Stringer("method", resolved),
		zap.Int("start_row", start.Row), zap.Int("start_col", start.Col),
		zap.Int("end_row", end.Row), zap.Int("end_col", end.Col))

	began := time.Now()
	moves, err := s.dispatch(start, end, resolved)
	elapsed := time.Since(began)
	if err != nil {
		return Result{}, err
	}

	if moves == Unreachable {
		log.Warn("no path found", zap.Duration("elapsed", elapsed))
	} else {
		log.Info("path found", zap.Int("moves", moves), zap.Duration("elapsed", elapsed))
	}

	return Result{Moves: moves, Elapsed: elapsed}, nil
}

// SolveCoords is the string-method convenience form of Solve, accepting raw
// coordinates and a method name ("bfs", "bidirectional_bfs", "a_star",
// "ida_star", "auto").
func (s *Solver) SolveCoords(startRow, startCol, endRow, endCol int, method string) (Result, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	return s.Solve(
		board.Position{Row: startRow, Col: startCol},
		board.Position{Row: endRow, Col: endCol},
		m)
}

// resolve maps Auto to a concrete strategy from the board size; concrete
// methods pass through unchanged.
func (s *Solver) resolve(method Method) Method {
	if method != Auto {
		return method
	}
	if s.board.Rows() <= autoBoardLimit && s.board.Cols() <= autoBoardLimit {
		s.opts.Logger.Debug("auto-selected bidirectional_bfs for small board")
		return Bidirectional
	}
	s.opts.Logger.Debug("auto-selected a_star for large board")

	return AStar
}

// dispatch runs the resolved strategy. The switch is exhaustive over the
// closed enumeration; anything else is a configuration error.
func (s *Solver) dispatch(start, end board.Position, method Method) (int, error) {
	switch method {
	case BFS:
		return bfs.BFS(s.board, start, end, bfs.WithContext(s.opts.Ctx))
	case Bidirectional:
		return bfs.Bidirectional(s.board, start, end,
			bfs.WithContext(s.opts.Ctx),
			bfs.WithOnProgress(s.progressLogger()))
	case AStar:
		return astar.AStar(s.board, start, end, astar.WithContext(s.opts.Ctx))
	case IDAStar:
		return astar.IDAStar(s.board, start, end, astar.WithContext(s.opts.Ctx))
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}

// progressLogger adapts the bidirectional statistics hook to throttled
// debug logging, at most one entry per progressLogInterval.
func (s *Solver) progressLogger() func(iteration, fwdQueue, bwdQueue, fwdSeen, bwdSeen int) {
	last := time.Now()

	return func(iteration, fwdQueue, bwdQueue, fwdSeen, bwdSeen int) {
		if time.Since(last) < progressLogInterval {
			return
		}
		last = time.Now()
		s.opts.Logger.Debug("bidirectional progress",
			zap.Int("iteration", iteration),
			zap.Int("forward_queue", fwdQueue),
			zap.Int("backward_queue", bwdQueue),
			zap.Int("forward_visited", fwdSeen),
			zap.Int("backward_visited", bwdSeen))
	}
}
