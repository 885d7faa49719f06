package astar

import (
	"math"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/heuristic"
)

// noMove marks a probe that found neither the end nor any candidate bound:
// the reachable space within the current bound is fully explored.
const noMove = math.MaxInt

// probe holds the mutable state of one bounded depth-first iteration.
// onPath tracks the squares of the current DFS path only; discoveries from
// earlier (failed) iterations are deliberately forgotten, trading repeated
// traversal time for an O(depth) memory footprint.
type probe struct {
	board  *board.Board
	opts   Options
	end    board.Position
	onPath map[board.Position]struct{}
}

// IDAStar returns the minimum number of knight moves from start to end on b,
// or Unreachable (-1) if no path exists. It runs depth-first probes under an
// f-bound that starts at heuristic.Estimate(start, end) and grows to the
// smallest f-value that exceeded the previous bound, so the first probe to
// reach end has walked a minimal path.
//
// Memory is O(current bound) for the path set versus A*'s O(rows×cols)
// frontier; the price is re-exploration across iterations. Recursion depth
// equals the current bound, which is capped by the diameter of the reachable
// component (at most rows×cols), well within Go's growable stacks.
//
// Returns ErrNilBoard for a nil board, or the context error on cancellation.
func IDAStar(b *board.Board, start, end board.Position, opts ...Option) (int, error) {
	if b == nil {
		return 0, ErrNilBoard
	}
	if start == end {
		return 0, nil
	}
	o := buildOptions(opts)

	p := &probe{board: b, opts: o, end: end}
	bound := heuristic.Estimate(start, end)

	// Deepen the bound until a probe succeeds or exhausts the space.
	for {
		p.onPath = map[board.Position]struct{}{start: {}}
		t, err := p.search(start, 0, bound)
		switch {
		case err != nil:
			return 0, err
		case t < 0:
			// Negative sentinel: a path of length -t reached the end.
			return -t, nil
		case t == noMove:
			// No f-value anywhere exceeded the bound and the end was never
			// reached: the goal is unreachable.
			return Unreachable, nil
		}
		bound = t
	}
}

// search is the recursive bounded DFS. Returns:
//   - f, when f = g + h(pos) exceeds bound (a candidate next bound);
//   - -g, when pos is the end (success sentinel);
//   - otherwise the minimum value returned by any viable child, or noMove
//     when no child is viable.
func (p *probe) search(pos board.Position, g, bound int) (int, error) {
	// cancellation check (once per probe entry)
	select {
	case <-p.opts.Ctx.Done():
		return 0, p.opts.Ctx.Err()
	default:
	}

	f := g + heuristic.Estimate(pos, p.end)
	if f > bound {
		return f, nil
	}
	if pos == p.end {
		return -g, nil
	}
	p.opts.OnExpand(pos, g)

	minBound := noMove
	for _, d := range board.KnightOffsets {
		next := pos.Offset(d[0], d[1])
		if !p.board.IsValid(next) {
			continue
		}
		if _, visiting := p.onPath[next]; visiting {
			continue
		}

		p.onPath[next] = struct{}{}
		t, err := p.search(next, g+1, bound)
		if err != nil {
			return 0, err
		}
		delete(p.onPath, next)

		if t < 0 {
			return t, nil
		}
		if t < minBound {
			minBound = t
		}
	}

	return minBound, nil
}
