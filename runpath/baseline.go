package runpath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// Baseline returns the unconstrained minimum cost from the top-left to the
// bottom-right cell of g: plain 4-neighbour Dijkstra on cells, charging
// each entered cell once. Any constrained Search cost is ≥ Baseline.
//
// Returns ErrNilGrid, or ErrInvalidParameters for grids of fewer than 2 cells
// and, wrapping ErrCostOverflow, when every route costs more than math.MaxInt.
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func Baseline(g *costgrid.Grid) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if g.Cells() < 2 {
		return 0, fmt.Errorf("%w: grid has %d cell(s), need at least 2", ErrInvalidParameters, g.Cells())
	}

	n := g.Cells()
	dist := make([]int, n) // -1 = not yet labelled
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0
	target := n - 1

	pq := statePQ{{state: State{}, cost: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*stateItem)
		p := item.state.Pos
		u := g.Index(p.X, p.Y)
		if item.cost > dist[u] {
			continue
		}
		if u == target {
			return item.cost, nil
		}
		for _, d := range [...]Direction{Up, Down, Left, Right} {
			q := p.Step(d)
			if !g.InBounds(q.X, q.Y) {
				continue
			}
			v := g.Index(q.X, q.Y)
			nd, ok := addCost(item.cost, g.At(q.X, q.Y))
			if ok && (dist[v] < 0 || nd < dist[v]) {
				dist[v] = nd
				heap.Push(&pq, &stateItem{state: State{Pos: q, Dir: d}, cost: nd})
			}
		}
	}

	// A rectangular grid is connected, so only overflowing sums leave the
	// target unsettled.
	return 0, fmt.Errorf("%w: %w: baseline on %dx%d grid", ErrInvalidParameters, ErrCostOverflow, g.Width(), g.Height())
}
