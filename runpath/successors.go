package runpath

import "github.com/katalvlaran/crucible/costgrid"

// Successors returns the legal moves out of s on g under c:
//
//   - straight ahead with Run+1, only while s.Run < c.MaxRun;
//   - each perpendicular heading with Run=1, only once s.Run ≥ c.MinRun.
//
// Reversal is never produced and targets outside g are dropped.
// Complexity: O(1).
func Successors(g *costgrid.Grid, s State, c Constraints) []State {
	return appendSuccessors(make([]State, 0, 3), g, s, c)
}

// appendSuccessors is Successors writing into buf to avoid per-state allocation.
func appendSuccessors(buf []State, g *costgrid.Grid, s State, c Constraints) []State {
	if s.Run < c.MaxRun {
		if p := s.Pos.Step(s.Dir); g.InBounds(p.X, p.Y) {
			buf = append(buf, State{Pos: p, Dir: s.Dir, Run: s.Run + 1})
		}
	}
	if s.Run >= c.MinRun {
		for _, d := range s.Dir.Turns() {
			if p := s.Pos.Step(d); g.InBounds(p.X, p.Y) {
				buf = append(buf, State{Pos: p, Dir: d, Run: 1})
			}
		}
	}

	return buf
}

// Seeds returns the opening states one step Right and one step Down from
// the origin, each with Run=seedRun. Steps that leave g are omitted.
func Seeds(g *costgrid.Grid, seedRun int) []State {
	origin := Point{}
	seeds := make([]State, 0, 2)
	for _, d := range [...]Direction{Right, Down} {
		if p := origin.Step(d); g.InBounds(p.X, p.Y) {
			seeds = append(seeds, State{Pos: p, Dir: d, Run: seedRun})
		}
	}

	return seeds
}
