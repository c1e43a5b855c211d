// Package crucible routes a traveler across a grid of cell costs when its
// straight runs are constrained.
//
// The traveler starts on the top-left cell and must reach the bottom-right
// one. It may take at most MaxRun consecutive steps in one direction, may
// turn only after MinRun steps, and never reverses. Every entered cell adds
// its cost once.
//
// Under the hood, everything is organized under small subpackages:
//
//	costgrid/ — immutable cost matrix, bounds-checked lookup, digit-grid parser
//	runpath/  — augmented (cell, direction, run) search: label-correcting and
//	            priority-queue strategies, path backtrace, baseline, batches
//	metrics/  — Prometheus recorder fed by the per-round search hook
//	config/   — YAML profiles and logging settings
//	cmd/crucible — command-line front end
//
// Quick example:
//
//	g, _ := costgrid.ParseString("111\n222\n333\n444")
//	res, err := runpath.Search(g, runpath.Constraints{MaxRun: 3, MinRun: 1})
//	// res.Cost == 11
package crucible
