package runpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/costgrid"
)

// Search returns the minimum total cost of travelling from the top-left
// cell to the bottom-right cell of g under c. The origin is free; every
// cell entered afterwards adds its cost once.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. 1 ≤ c.MinRun ≤ c.MaxRun (ErrInvalidParameters).
//  3. g must hold at least 2 cells (ErrInvalidParameters).
//  4. Options must be valid (ErrOptionViolation).
//
// When no goal state can be labelled, Search returns ErrUnreachable.
// When the goal is only reachable at a cost above math.MaxInt, Search
// returns ErrInvalidParameters wrapping ErrCostOverflow.
//
// Complexity (S = W×H×4×MaxRun states):
//
//   - label-correcting: O(R×S) time for R rounds, O(S) memory.
//   - priority-queue:   O(S log S) time, O(S) memory.
func Search(g *costgrid.Grid, c Constraints, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	if g.Cells() < 2 {
		return Result{}, fmt.Errorf("%w: grid has %d cell(s), need at least 2", ErrInvalidParameters, g.Cells())
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	cfg.SeedRun = min(cfg.SeedRun, c.MaxRun)

	r := newRunner(g, c, cfg)
	var err error
	switch cfg.Strategy {
	case StrategyPriorityQueue:
		err = r.settleInOrder()
	default:
		err = r.relaxRounds()
	}
	if err != nil {
		return Result{}, err
	}

	return r.result()
}

// runner holds the mutable state for a single Search execution.
// Nothing in it is shared with other searches; g is read-only.
type runner struct {
	g    *costgrid.Grid
	c    Constraints
	opts Options
	goal Point

	dist map[State]int   // best known cost per state; absent = ∞
	prev map[State]State // predecessor per state; nil unless ReturnPath

	reached  bool  // any accepted goal state labelled
	best     int   // lowest label among accepted goal states
	bestGoal State // the state holding best
	overflow bool  // some candidate cost exceeded math.MaxInt

	rounds int
	buf    []State
}

func newRunner(g *costgrid.Grid, c Constraints, opts Options) *runner {
	w, h := g.Dimensions()
	r := &runner{
		g:    g,
		c:    c,
		opts: opts,
		goal: Point{X: w - 1, Y: h - 1},
		dist: make(map[State]int, g.Cells()*4),
		buf:  make([]State, 0, 3),
	}
	if opts.ReturnPath {
		r.prev = make(map[State]State, g.Cells()*4)
	}

	return r
}

// accepts reports whether s terminates the route.
func (r *runner) accepts(s State) bool {
	if s.Pos != r.goal {
		return false
	}

	return !r.opts.StrictGoal || s.Run >= r.c.MinRun
}

// label records cost for s, coming from `from` unless s is a seed.
// Goal bookkeeping is updated so that best always equals the minimum
// label over accepted goal states.
func (r *runner) label(s State, cost int, from *State) {
	r.dist[s] = cost
	if r.prev != nil && from != nil {
		r.prev[s] = *from
	}
	if r.accepts(s) && (!r.reached || cost < r.best) {
		r.reached = true
		r.best = cost
		r.bestGoal = s
	}
}

// addCost returns base+cost, or false when the sum exceeds math.MaxInt.
// Both operands are non-negative.
func addCost(base, cost int) (int, bool) {
	if cost > math.MaxInt-base {
		return 0, false
	}

	return base + cost, true
}

// extend returns the candidate label of nxt reached from a state labelled
// base. An overflowing candidate is above every finite label, so it can
// never improve the answer and is dropped.
func (r *runner) extend(base int, nxt State) (int, bool) {
	cand, ok := addCost(base, r.g.At(nxt.Pos.X, nxt.Pos.Y))
	if !ok {
		r.overflow = true
	}

	return cand, ok
}

// checkpoint runs between rounds: cancellation, then the round budget.
func (r *runner) checkpoint() error {
	if err := r.opts.Ctx.Err(); err != nil {
		return fmt.Errorf("runpath: search aborted after %d rounds: %w", r.rounds, err)
	}
	if r.opts.MaxRounds > 0 && r.rounds >= r.opts.MaxRounds {
		return fmt.Errorf("%w: %d rounds", ErrRoundBudget, r.rounds)
	}

	return nil
}

// relaxRounds is the label-correcting loop. Each round:
//
//  1. snapshots bestKnown, the lowest goal label so far (∞ if none);
//  2. relaxes every successor of every frontier state, discarding
//     candidates above bestKnown and keeping strict improvements;
//  3. makes the improved states the next frontier.
//
// It stops when a round improves nothing.
func (r *runner) relaxRounds() error {
	frontier := Seeds(r.g, r.opts.SeedRun)
	for _, s := range frontier {
		r.label(s, r.g.At(s.Pos.X, s.Pos.Y), nil)
	}

	queued := make(map[State]struct{})
	for len(frontier) > 0 {
		if err := r.checkpoint(); err != nil {
			return err
		}
		r.rounds++

		bestKnown, bounded := r.best, r.reached
		next := make([]State, 0, len(frontier))
		clear(queued)
		stats := RoundStats{Round: r.rounds, Frontier: len(frontier)}

		for i := range frontier {
			cur := frontier[i]
			base := r.dist[cur]
			r.buf = appendSuccessors(r.buf[:0], r.g, cur, r.c)
			for _, nxt := range r.buf {
				cand, ok := r.extend(base, nxt)
				if !ok {
					continue
				}
				if bounded && cand > bestKnown {
					stats.Pruned++
					continue
				}
				if old, ok := r.dist[nxt]; ok && cand >= old {
					continue
				}
				r.label(nxt, cand, &cur)
				stats.Improved++
				if _, dup := queued[nxt]; !dup {
					queued[nxt] = struct{}{}
					next = append(next, nxt)
				}
			}
		}

		stats.BestKnown, stats.Reached = r.best, r.reached
		r.report(stats)
		frontier = next
	}

	return nil
}

// report forwards stats to the hook and the debug log.
func (r *runner) report(stats RoundStats) {
	r.opts.OnRound(stats)
	r.opts.Logger.Debug("runpath round",
		"round", stats.Round,
		"frontier", stats.Frontier,
		"improved", stats.Improved,
		"pruned", stats.Pruned,
		"reached", stats.Reached,
		"best", stats.BestKnown,
	)
}

// result turns the final labels into a Result.
func (r *runner) result() (Result, error) {
	if !r.reached && r.overflow {
		return Result{}, fmt.Errorf("%w: %w: %s on %dx%d grid", ErrInvalidParameters, ErrCostOverflow, r.c, r.g.Width(), r.g.Height())
	}
	if !r.reached {
		return Result{}, fmt.Errorf("%w: %s on %dx%d grid", ErrUnreachable, r.c, r.g.Width(), r.g.Height())
	}
	res := Result{
		Cost:    r.best,
		Goal:    r.bestGoal,
		Rounds:  r.rounds,
		Settled: len(r.dist),
	}
	if r.prev != nil {
		path, err := r.backtrace(r.bestGoal)
		if err != nil {
			return Result{}, err
		}
		res.Path = path
	}

	return res, nil
}

// errBrokenChain is returned by backtrace if predecessors loop; it would
// mean a label was lowered without lowering its successors.
var errBrokenChain = errors.New("runpath: predecessor chain does not reach a seed")

// backtrace follows prev from goal to a seed and returns the route seed→goal.
func (r *runner) backtrace(goal State) ([]State, error) {
	path := []State{goal}
	for at := goal; ; {
		p, ok := r.prev[at]
		if !ok {
			break
		}
		if len(path) > len(r.dist) {
			return nil, errBrokenChain
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
