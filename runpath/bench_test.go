package runpath_test

import (
	"testing"

	"github.com/katalvlaran/crucible/runpath"
)

// BenchmarkSearch measures both strategies on a 141×141 random grid,
// the size of a typical full puzzle input.
// Complexity: O(R×S) label-correcting, O(S log S) priority-queue.
func BenchmarkSearch(b *testing.B) {
	g := randomGrid(b, 42, 141, 141)
	for _, bc := range []struct {
		name string
		s    runpath.Strategy
		c    runpath.Constraints
	}{
		{"LabelCorrecting/standard", runpath.StrategyLabelCorrecting, standard},
		{"LabelCorrecting/ultra", runpath.StrategyLabelCorrecting, ultra},
		{"PriorityQueue/standard", runpath.StrategyPriorityQueue, standard},
		{"PriorityQueue/ultra", runpath.StrategyPriorityQueue, ultra},
	} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := runpath.Search(g, bc.c, runpath.WithStrategy(bc.s)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBaseline measures the unconstrained cell Dijkstra.
func BenchmarkBaseline(b *testing.B) {
	g := randomGrid(b, 42, 141, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = runpath.Baseline(g)
	}
}
