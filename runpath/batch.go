package runpath

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/costgrid"
)

// Job is one named query of a batch.
type Job struct {
	Name        string
	Constraints Constraints
	// Options are applied after the batch-wide options.
	Options []Option
}

// Outcome pairs a Job with what Search returned for it.
type Outcome struct {
	Job     Job
	Result  Result
	Err     error
	Elapsed time.Duration
}

// SearchAll runs every job concurrently over the same read-only grid, one
// goroutine per job, each owning its own labels and frontier.
//
// Per-job failures (ErrUnreachable, ErrInvalidParameters, ErrRoundBudget…)
// are recorded in Outcome.Err. Only cancellation of ctx, or of the batch
// after such a cancellation, is returned as the batch error.
// Outcomes are in job order.
func SearchAll(ctx context.Context, g *costgrid.Grid, jobs []Job, common ...Option) ([]Outcome, error) {
	out := make([]Outcome, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)

	for i := range jobs {
		eg.Go(func() error {
			job := jobs[i]
			opts := make([]Option, 0, len(common)+len(job.Options)+1)
			opts = append(opts, common...)
			opts = append(opts, job.Options...)
			opts = append(opts, WithContext(egCtx))

			start := time.Now()
			res, err := Search(g, job.Constraints, opts...)
			out[i] = Outcome{Job: job, Result: res, Err: err, Elapsed: time.Since(start)}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return out, err
	}

	return out, nil
}
