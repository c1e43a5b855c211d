// Package config loads crucible settings from YAML: the run-length profiles
// to solve, search options shared by every profile, and logging.
//
// Example:
//
//	strategy: label-correcting   # or priority-queue
//	seed_run: 2
//	strict_goal: false
//	max_rounds: 0                # 0 = unbounded
//	profiles:
//	  - {name: standard, max_run: 3, min_run: 1}
//	  - {name: ultra, max_run: 10, min_run: 4}
//	log: {level: info, format: text}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible/runpath"
)

// ErrInvalidConfig is returned by Validate and wraps every config problem.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Profile is one named set of run-length constraints.
type Profile struct {
	Name                string `yaml:"name"`
	runpath.Constraints `yaml:",inline"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Config is the root document.
type Config struct {
	Strategy   string    `yaml:"strategy"`
	SeedRun    int       `yaml:"seed_run"`
	StrictGoal bool      `yaml:"strict_goal"`
	MaxRounds  int       `yaml:"max_rounds"`
	Profiles   []Profile `yaml:"profiles"`
	Log        Log       `yaml:"log"`
}

// Default returns the two classic profiles with label-correcting search.
func Default() Config {
	return Config{
		Strategy: runpath.StrategyLabelCorrecting.String(),
		SeedRun:  runpath.DefaultSeedRun,
		Profiles: []Profile{
			{Name: "standard", Constraints: runpath.Constraints{MaxRun: 3, MinRun: 1}},
			{Name: "ultra", Constraints: runpath.Constraints{MaxRun: 10, MinRun: 4}},
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default and validates the result.
// Unknown keys are rejected. A document that lists profiles replaces the
// default profiles entirely.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field; the first problem is returned.
func (c Config) Validate() error {
	if _, err := runpath.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.SeedRun < 1 {
		return fmt.Errorf("%w: seed_run %d < 1", ErrInvalidConfig, c.SeedRun)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("%w: max_rounds %d < 0", ErrInvalidConfig, c.MaxRounds)
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("%w: no profiles", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("%w: profile %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate profile %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = struct{}{}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: profile %q: %v", ErrInvalidConfig, p.Name, err)
		}
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// Jobs turns the profiles into runpath batch jobs, in file order.
func (c Config) Jobs() []runpath.Job {
	jobs := make([]runpath.Job, len(c.Profiles))
	for i, p := range c.Profiles {
		jobs[i] = runpath.Job{Name: p.Name, Constraints: p.Constraints}
	}

	return jobs
}

// Options returns the search options shared by every profile.
// Call Validate first; an unknown strategy falls back to label-correcting.
func (c Config) Options() []runpath.Option {
	strategy, _ := runpath.ParseStrategy(c.Strategy)
	opts := []runpath.Option{
		runpath.WithStrategy(strategy),
		runpath.WithSeedRun(c.SeedRun),
		runpath.WithMaxRounds(c.MaxRounds),
	}
	if c.StrictGoal {
		opts = append(opts, runpath.WithStrictGoal())
	}

	return opts
}

// Logger builds the configured slog logger writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	ho := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	}

	return slog.New(slog.NewTextHandler(w, ho)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}

	return l, nil
}
