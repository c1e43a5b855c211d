package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/metrics"
	"github.com/katalvlaran/crucible/runpath"
)

// errProfilesFailed is returned when a profile failed for a reason other
// than an unreachable goal.
var errProfilesFailed = errors.New("one or more profiles failed")

type solveFlags struct {
	configPath string
	maxRun     int
	minRun     int
	strategy   string
	seedRun    int
	strictGoal bool
	showPath   bool
	metricsOut string
	logLevel   string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <grid-file>",
		Short: "Solve every configured profile for a grid",
		Long: `Reads a grid of digit costs ("-" for stdin) and prints the minimum route cost
for each profile. Profiles come from --config, or the built-in standard
(max 3, min 1) and ultra (max 10, min 4) pair. --max-run/--min-run replace
them with a single "custom" profile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.IntVar(&f.maxRun, "max-run", 0, "maximum consecutive steps in one direction (custom profile)")
	fl.IntVar(&f.minRun, "min-run", 0, "minimum consecutive steps before a turn (custom profile)")
	fl.StringVar(&f.strategy, "strategy", "", "label-correcting or priority-queue")
	fl.IntVar(&f.seedRun, "seed-run", 0, "run length of the two opening states")
	fl.BoolVar(&f.strictGoal, "strict-goal", false, "require the final run to reach min-run")
	fl.BoolVar(&f.showPath, "path", false, "print the route of each solved profile")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus text metrics to this file")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// resolveConfig layers flags over the config file (or defaults).
func resolveConfig(cmd *cobra.Command, f solveFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("max-run") || fl.Changed("min-run") {
		c := runpath.Constraints{MaxRun: f.maxRun, MinRun: f.minRun}
		if !fl.Changed("min-run") {
			c.MinRun = 1
		}
		if !fl.Changed("max-run") {
			c.MaxRun = c.MinRun
		}
		cfg.Profiles = []config.Profile{{Name: "custom", Constraints: c}}
	}
	if fl.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fl.Changed("seed-run") {
		cfg.SeedRun = f.seedRun
	}
	if fl.Changed("strict-goal") {
		cfg.StrictGoal = f.strictGoal
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, gridPath string, f solveFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	g, err := loadGrid(cmd, gridPath)
	if err != nil {
		return err
	}
	w, h := g.Dimensions()
	logger.Info("grid loaded", "path", gridPath, "width", w, "height", h)

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	jobs := cfg.Jobs()
	for i := range jobs {
		jobs[i].Options = []runpath.Option{runpath.WithOnRound(rec.Hook(jobs[i].Name))}
		if f.showPath {
			jobs[i].Options = append(jobs[i].Options, runpath.WithReturnPath())
		}
	}
	common := append(cfg.Options(), runpath.WithLogger(logger))

	outcomes, err := runpath.SearchAll(cmd.Context(), g, jobs, common...)
	if err != nil {
		return err
	}

	failed := false
	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		rec.Observe(o.Job.Name, o.Result, o.Err, o.Elapsed)
		switch {
		case o.Err == nil:
			fmt.Fprintf(out, "%s: %d\n", o.Job.Name, o.Result.Cost)
			logger.Info("profile solved",
				"profile", o.Job.Name,
				"constraints", o.Job.Constraints.String(),
				"cost", o.Result.Cost,
				"rounds", o.Result.Rounds,
				"states", o.Result.Settled,
				"elapsed", o.Elapsed,
			)
			if f.showPath {
				printPath(out, o.Result.Path)
			}
		case errors.Is(o.Err, runpath.ErrUnreachable):
			fmt.Fprintf(out, "%s: unreachable\n", o.Job.Name)
		default:
			failed = true
			fmt.Fprintf(out, "%s: error: %v\n", o.Job.Name, o.Err)
			logger.Error("profile failed", "profile", o.Job.Name, "error", o.Err)
		}
	}

	if f.metricsOut != "" {
		if err := prometheus.WriteToTextfile(f.metricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", f.metricsOut)
	}
	if failed {
		return errProfilesFailed
	}

	return nil
}

func printPath(w io.Writer, path []runpath.State) {
	for _, s := range path {
		fmt.Fprintf(w, "  %s\n", s)
	}
}
