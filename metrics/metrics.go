// Package metrics exports runpath search activity as Prometheus metrics.
//
// A Recorder owns one set of collectors registered on the Registerer given
// to NewRecorder. Hook adapts it to runpath.WithOnRound; Observe records the
// outcome of a finished search. All methods are safe for concurrent use, so
// one Recorder can serve every job of a runpath.SearchAll batch.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/crucible/runpath"
)

// Outcome label values of crucible_search_outcomes_total.
const (
	ResultSolved      = "solved"
	ResultUnreachable = "unreachable"
	ResultInvalid     = "invalid"
	ResultAborted     = "aborted"
)

// Recorder holds the search collectors.
type Recorder struct {
	rounds       *prometheus.CounterVec
	improvements *prometheus.CounterVec
	pruned       *prometheus.CounterVec
	cost         *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
	outcomes     *prometheus.CounterVec
}

// NewRecorder registers the collectors on reg. Registering two Recorders on
// the same Registerer panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "crucible_search_rounds_total",
			Help: "Relaxation rounds executed, by profile",
		}, []string{"profile"}),
		improvements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "crucible_search_improvements_total",
			Help: "State labels created or lowered, by profile",
		}, []string{"profile"}),
		pruned: f.NewCounterVec(prometheus.CounterOpts{
			Name: "crucible_search_pruned_total",
			Help: "Candidates discarded by the goal bound, by profile",
		}, []string{"profile"}),
		cost: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "crucible_search_cost",
			Help: "Minimum route cost of the last solved search, by profile",
		}, []string{"profile"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crucible_search_duration_seconds",
			Help:    "Wall time per search",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"profile"}),
		outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "crucible_search_outcomes_total",
			Help: "Finished searches by profile and result",
		}, []string{"profile", "result"}),
	}
}

// Hook returns a runpath round hook that accounts rounds under profile.
func (r *Recorder) Hook(profile string) func(runpath.RoundStats) {
	rounds := r.rounds.WithLabelValues(profile)
	improvements := r.improvements.WithLabelValues(profile)
	pruned := r.pruned.WithLabelValues(profile)

	return func(s runpath.RoundStats) {
		rounds.Inc()
		improvements.Add(float64(s.Improved))
		pruned.Add(float64(s.Pruned))
	}
}

// Observe records a finished search. The cost gauge only moves on success.
func (r *Recorder) Observe(profile string, res runpath.Result, err error, elapsed time.Duration) {
	r.duration.WithLabelValues(profile).Observe(elapsed.Seconds())
	result := Classify(err)
	r.outcomes.WithLabelValues(profile, result).Inc()
	if result == ResultSolved {
		r.cost.WithLabelValues(profile).Set(float64(res.Cost))
	}
}

// Classify maps a Search error onto an outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultSolved
	case errors.Is(err, runpath.ErrUnreachable):
		return ResultUnreachable
	case errors.Is(err, runpath.ErrInvalidParameters), errors.Is(err, runpath.ErrOptionViolation), errors.Is(err, runpath.ErrNilGrid):
		return ResultInvalid
	}

	return ResultAborted
}
