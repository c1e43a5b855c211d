package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const worked = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolve_DefaultProfiles(t *testing.T) {
	out, err := run(t, "", "solve", writeFile(t, "grid.txt", worked))
	require.NoError(t, err)
	require.Equal(t, "standard: 102\nultra: 94\n", out)
}

func TestSolve_CustomProfileFromStdin(t *testing.T) {
	out, err := run(t, "111\n222\n333\n444\n", "solve", "-", "--max-run", "10", "--min-run", "4", "--path",
		"--strategy", "priority-queue")
	require.NoError(t, err)
	require.Equal(t, "custom: 17\n  (0,1)down#2\n  (0,2)down#3\n  (0,3)down#4\n  (1,3)right#1\n  (2,3)right#2\n", out)
}

func TestSolve_Unreachable(t *testing.T) {
	out, err := run(t, "12\n34\n", "solve", "-")
	require.NoError(t, err, "unreachable is a result, not a failure")
	require.Equal(t, "standard: 6\nultra: unreachable\n", out)
}

func TestSolve_ConfigAndMetrics(t *testing.T) {
	cfgPath := writeFile(t, "crucible.yaml", `
strategy: priority-queue
seed_run: 1
strict_goal: true
profiles:
  - {name: ultra, max_run: 10, min_run: 4}
log: {level: error, format: json}
`)
	metricsPath := filepath.Join(t.TempDir(), "search.prom")
	grid := writeFile(t, "grid.txt", "111111111111\n999999999991\n999999999991\n999999999991\n999999999991\n")

	out, err := run(t, "", "solve", grid, "--config", cfgPath, "--metrics-out", metricsPath)
	require.NoError(t, err)
	require.Equal(t, "ultra: 71\n", out)

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(prom), `crucible_search_cost{profile="ultra"} 71`)
	require.Contains(t, string(prom), `crucible_search_outcomes_total{profile="ultra",result="solved"} 1`)
}

func TestSolve_StrictGoalFlagOverridesConfig(t *testing.T) {
	cfgPath := writeFile(t, "crucible.yaml", `
strict_goal: true
profiles:
  - {name: ultra, max_run: 10, min_run: 4}
`)
	grid := "111\n222\n333\n444\n"

	out, err := run(t, grid, "solve", "-", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "ultra: unreachable\n", out)

	out, err = run(t, grid, "solve", "-", "--config", cfgPath, "--strict-goal=false")
	require.NoError(t, err)
	require.Equal(t, "ultra: 17\n", out)
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "12\n3x\n", "solve", "-")
	require.ErrorContains(t, err, "not a decimal digit")

	_, err = run(t, "12\n34\n", "solve", "-", "--max-run", "1", "--min-run", "3")
	require.ErrorContains(t, err, "invalid configuration")

	_, err = run(t, "12\n34\n", "solve", "-", "--strategy", "bellman")
	require.ErrorContains(t, err, "unknown strategy")

	_, err = run(t, "", "solve")
	require.Error(t, err)
}

func TestBaseline(t *testing.T) {
	out, err := run(t, "111\n222\n333\n444\n", "baseline", "-")
	require.NoError(t, err)
	require.Equal(t, "baseline: 11\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "crucible dev\n", out)
}
