package runpath

import "container/heap"

// heapBatch is the number of pops between two OnRound reports (and two
// checkpoints) in settleInOrder.
const heapBatch = 1024

// settleInOrder is Dijkstra over the augmented graph. States are popped in
// increasing cost order; the first accepted goal state popped is optimal
// because every cell cost is non-negative.
//
// We use a lazy decrease-key strategy: an improved state is pushed again and
// stale entries are skipped when popped.
func (r *runner) settleInOrder() error {
	pq := make(statePQ, 0, r.g.Cells())
	for _, s := range Seeds(r.g, r.opts.SeedRun) {
		cost := r.g.At(s.Pos.X, s.Pos.Y)
		r.label(s, cost, nil)
		pq = append(pq, &stateItem{state: s, cost: cost})
	}
	heap.Init(&pq)

	settled := make(map[State]struct{}, r.g.Cells()*4)
	stats := RoundStats{Round: 1}
	if err := r.checkpoint(); err != nil {
		return err
	}
	for pq.Len() > 0 {
		if stats.Frontier == 0 && r.rounds > 0 {
			if err := r.checkpoint(); err != nil {
				return err
			}
		}
		item := heap.Pop(&pq).(*stateItem)
		u := item.state
		if _, done := settled[u]; done || item.cost > r.dist[u] {
			continue // stale heap entry
		}
		settled[u] = struct{}{}
		stats.Frontier++

		if r.accepts(u) {
			// Labels of other goal states may be lower only if they were
			// popped first, so u holds the optimum.
			r.best, r.bestGoal, r.reached = item.cost, u, true
			break
		}

		r.buf = appendSuccessors(r.buf[:0], r.g, u, r.c)
		for _, v := range r.buf {
			cand, ok := r.extend(item.cost, v)
			if !ok {
				continue
			}
			if old, ok := r.dist[v]; ok && cand >= old {
				continue
			}
			r.label(v, cand, &u)
			stats.Improved++
			heap.Push(&pq, &stateItem{state: v, cost: cand})
		}

		if stats.Frontier == heapBatch {
			r.rounds++
			stats.BestKnown, stats.Reached = r.best, r.reached
			r.report(stats)
			stats = RoundStats{Round: r.rounds + 1}
		}
	}

	r.rounds++
	stats.BestKnown, stats.Reached = r.best, r.reached
	r.report(stats)

	return nil
}

// stateItem is a heap entry: a state and the cost it was pushed with.
type stateItem struct {
	state State
	cost  int
}

// statePQ is a min-heap of *stateItem ordered by cost.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x (a *stateItem) onto the heap. Called by heap.Push.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
