package runpath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/runpath"
)

const (
	gridA = "111\n222\n333\n444"
	gridB = "11111\n22222\n33333\n44444\n55555"
	// the canonical 13×13 worked example
	gridC = `2413432311323
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
4322674655533`
	// a long top row and a right column of ones
	gridRidge = `111111111111
999999999991
999999999991
999999999991
999999999991`
)

var (
	standard = runpath.Constraints{MaxRun: 3, MinRun: 1}
	ultra    = runpath.Constraints{MaxRun: 10, MinRun: 4}
)

// randomGrid builds a deterministic w×h grid of costs in [0,9].
func randomGrid(t testing.TB, seed int64, w, h int) *costgrid.Grid {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = rng.Intn(10)
		}
	}
	g, err := costgrid.New(rows)
	require.NoError(t, err)

	return g
}

// requireValidPath checks that path is a legal route under c whose entry
// costs sum to want.
func requireValidPath(t *testing.T, g *costgrid.Grid, c runpath.Constraints, seedRun int, path []runpath.State, want int) {
	t.Helper()
	require.NotEmpty(t, path)

	first := path[0]
	require.Equal(t, seedRun, first.Run, "first state must be a seed")
	require.Equal(t, runpath.Point{}.Step(first.Dir), first.Pos, "seed must be one step from origin")

	w, h := g.Dimensions()
	last := path[len(path)-1]
	require.Equal(t, runpath.Point{X: w - 1, Y: h - 1}, last.Pos, "path must end on the goal")

	sum := g.At(first.Pos.X, first.Pos.Y)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		require.Equal(t, a.Pos.Step(b.Dir), b.Pos, "step %d is not adjacent", i)
		require.NotEqual(t, a.Dir.Opposite(), b.Dir, "step %d reverses", i)
		if b.Dir == a.Dir {
			require.Equal(t, a.Run+1, b.Run, "step %d run", i)
			require.LessOrEqual(t, b.Run, c.MaxRun, "step %d exceeds max run", i)
		} else {
			require.Equal(t, 1, b.Run, "step %d turn run", i)
			require.GreaterOrEqual(t, a.Run, c.MinRun, "step %d turns too early", i)
		}
		sum += g.At(b.Pos.X, b.Pos.Y)
	}
	require.Equal(t, want, sum, "path cost")
}
