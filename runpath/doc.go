// Package runpath finds the minimum-cost route across a costgrid.Grid for a
// traveler whose straight runs are constrained: at most MaxRun consecutive
// steps in one direction, and at least MinRun steps before it may turn.
// Reversing is never allowed.
//
// Overview:
//
//   - Position alone does not decide which moves are legal, so the search runs
//     over an augmented graph whose nodes are State{Pos, Dir, Run}.
//   - States are immutable map keys; every transition builds a new State.
//   - The route starts on the top-left cell (free) and ends on the
//     bottom-right cell. Each entered cell adds its cost once.
//   - Two seed states are placed one step Right and one step Down of the
//     origin. By default the origin counts as the first step of that run,
//     so seeds carry Run=2 (see WithSeedRun).
//
// Strategies:
//
//   - StrategyLabelCorrecting (default): rounds of exhaustive relaxation over
//     the active frontier. At the start of each round the lowest goal label
//     found so far becomes an upper bound; candidates above it are discarded.
//     Only strictly improved states join the next frontier. The search stops
//     when a round improves nothing.
//   - StrategyPriorityQueue: Dijkstra over the same graph with a lazy
//     decrease-key min-heap; stops at the first goal state popped.
//
// Both return the same Cost for every input.
//
// Complexity (S ≤ W×H×4×MaxRun states):
//
//   - Label-correcting: O(R×S) time for R rounds, O(S) memory.
//   - Priority-queue:   O(S log S) time, O(S) memory.
//
// Options:
//
//   - WithStrategy, WithReturnPath, WithSeedRun, WithStrictGoal.
//   - WithOnRound: hook called with RoundStats after every round.
//   - WithContext, WithMaxRounds: checked between rounds.
//   - WithLogger: *slog.Logger for per-round debug records.
//
// Errors (sentinel):
//
//   - ErrNilGrid:           grid pointer is nil.
//   - ErrInvalidParameters: not 1 ≤ MinRun ≤ MaxRun, or fewer than 2 cells.
//   - ErrOptionViolation:   an Option received an invalid value.
//   - ErrUnreachable:       no route satisfies the constraints. This is a
//     normal outcome that callers are expected to handle.
//   - ErrRoundBudget:       WithMaxRounds was exceeded.
//
// Concurrency:
//
//   - A Search owns its labels and frontier; the grid is only read.
//     Any number of searches may share one grid. SearchAll runs a batch of
//     Jobs concurrently over one grid.
//
// See also Baseline for the unconstrained cost of the same grid.
package runpath
