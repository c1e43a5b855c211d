// Package runpath defines the augmented search state, run-length
// constraints and functional options for constrained grid routing.
package runpath

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors returned by Search and friends.
var (
	// ErrNilGrid indicates that a nil *costgrid.Grid was passed.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrInvalidParameters indicates bad run-length bounds or a grid too small
	// to have a distinct start and goal.
	ErrInvalidParameters = errors.New("runpath: invalid parameters")

	// ErrUnreachable indicates that no route reaches the goal under the
	// given constraints. It is an expected outcome, not a fault.
	ErrUnreachable = errors.New("runpath: goal unreachable under constraints")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("runpath: invalid option supplied")

	// ErrRoundBudget indicates the search exceeded WithMaxRounds.
	ErrRoundBudget = errors.New("runpath: round budget exhausted")

	// ErrCostOverflow indicates that every route to the goal costs more than
	// math.MaxInt. It is always reported together with ErrInvalidParameters.
	ErrCostOverflow = errors.New("runpath: route cost overflows int")
)

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	// Up moves towards y-1.
	Up Direction = iota
	// Down moves towards y+1.
	Down
	// Left moves towards x-1.
	Left
	// Right moves towards x+1.
	Right
)

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the unit offset of one step in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}

	return 0, 0
}

// Turns returns the two headings perpendicular to d.
func (d Direction) Turns() [2]Direction {
	if d == Up || d == Down {
		return [2]Direction{Left, Right}
	}

	return [2]Direction{Up, Down}
}

// Opposite returns the reversed heading. Reversal is never a legal move;
// Opposite exists for tests and path validation.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}

	return Left
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Step returns the neighbour of p one cell away in d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()

	return Point{X: p.X + dx, Y: p.Y + dy}
}

// State is a node of the augmented graph: the traveler stands on Pos,
// having arrived by Run consecutive steps heading Dir.
// Two states are the same node iff all three fields match.
type State struct {
	Pos Point
	Dir Direction
	Run int
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)%s#%d", s.Pos.X, s.Pos.Y, s.Dir, s.Run)
}

// Constraints bounds the straight runs of the traveler.
//
//	MaxRun – at most this many consecutive steps in one direction.
//	MinRun – at least this many consecutive steps before a turn.
type Constraints struct {
	MaxRun int `yaml:"max_run"`
	MinRun int `yaml:"min_run"`
}

// Validate enforces 1 ≤ MinRun ≤ MaxRun.
func (c Constraints) Validate() error {
	if c.MaxRun < 1 || c.MinRun < 1 || c.MaxRun < c.MinRun {
		return fmt.Errorf("%w: max_run=%d min_run=%d (need max_run ≥ min_run ≥ 1)",
			ErrInvalidParameters, c.MaxRun, c.MinRun)
	}

	return nil
}

func (c Constraints) String() string {
	return fmt.Sprintf("max_run=%d,min_run=%d", c.MaxRun, c.MinRun)
}

// Result is the outcome of a successful Search.
type Result struct {
	// Cost is the minimum total cost of entering every cell after the origin.
	Cost int
	// Goal is the goal-position state that realised Cost.
	Goal State
	// Path lists states from a seed to Goal; nil unless WithReturnPath.
	Path []State
	// Rounds counts relaxation rounds (or heap batches, see WithOnRound).
	Rounds int
	// Settled counts distinct states that received a distance label.
	Settled int
}

// RoundStats is handed to the OnRound hook after every round.
type RoundStats struct {
	Round     int  // 1-based round number
	Frontier  int  // states relaxed in this round
	Improved  int  // successor labels created or lowered
	Pruned    int  // candidates discarded by the goal bound
	BestKnown int  // current upper bound on the answer; valid iff Reached
	Reached   bool // whether any goal state carries a label yet
}

// Strategy selects the relaxation order.
type Strategy int

const (
	// StrategyLabelCorrecting relaxes every frontier state each round until
	// no label improves, pruning with the best goal label so far.
	StrategyLabelCorrecting Strategy = iota

	// StrategyPriorityQueue settles states in increasing cost order using a
	// lazy decrease-key min-heap. Produces the same Cost.
	StrategyPriorityQueue
)

func (s Strategy) String() string {
	switch s {
	case StrategyLabelCorrecting:
		return "label-correcting"
	case StrategyPriorityQueue:
		return "priority-queue"
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps the names produced by String back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "label-correcting":
		return StrategyLabelCorrecting, nil
	case "priority-queue":
		return StrategyPriorityQueue, nil
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// DefaultSeedRun counts the origin as the first step of the opening run,
// so each seed state one cell away carries Run=2.
// Search clamps the seed run to MaxRun, so with MaxRun=1 the seeds carry Run=1.
const DefaultSeedRun = 2

// Options configures a Search.
type Options struct {
	// Ctx is checked between rounds; cancellation aborts the search.
	Ctx context.Context

	// Strategy chooses label-correcting rounds or heap order.
	Strategy Strategy

	// ReturnPath records predecessors and fills Result.Path.
	ReturnPath bool

	// SeedRun is the Run value of the two seed states. Must be ≥ 1.
	SeedRun int

	// StrictGoal accepts a goal state only when its Run ≥ MinRun.
	StrictGoal bool

	// MaxRounds, if > 0, fails the search with ErrRoundBudget once exceeded.
	MaxRounds int

	// OnRound is called after each round with its statistics.
	OnRound func(RoundStats)

	// Logger receives debug records per round.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns:
//   - context.Background()
//   - StrategyLabelCorrecting
//   - ReturnPath false, StrictGoal false
//   - SeedRun DefaultSeedRun
//   - no round budget, no-op hook, discarding logger
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: StrategyLabelCorrecting,
		SeedRun:  DefaultSeedRun,
		OnRound:  func(RoundStats) {},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the context checked between rounds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithStrategy selects the relaxation order.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyLabelCorrecting && s != StrategyPriorityQueue {
			o.err = fmt.Errorf("%w: strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithReturnPath enables path reconstruction into Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithSeedRun overrides the Run value of the two seed states.
// Use 1 to treat the first step away from the origin as the start of the run.
// Values above the search's MaxRun are clamped to MaxRun.
func WithSeedRun(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: seed run %d < 1", ErrOptionViolation, n)
			return
		}
		o.SeedRun = n
	}
}

// WithStrictGoal requires the final run into the goal to be at least MinRun long.
func WithStrictGoal() Option {
	return func(o *Options) {
		o.StrictGoal = true
	}
}

// WithMaxRounds caps the number of rounds. Zero disables the cap.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max rounds %d < 0", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithOnRound installs a per-round observability hook.
// Repeated use chains the hooks in the order given.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		if prev := o.OnRound; prev != nil {
			o.OnRound = func(s RoundStats) {
				prev(s)
				fn(s)
			}
			return
		}
		o.OnRound = fn
	}
}

// WithLogger sets the structured logger used for per-round debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
