package costgrid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/crucible/costgrid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and negative inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"NilRows", nil, costgrid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, costgrid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, costgrid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, costgrid.ErrNonRectangular},
		{"NegativeCost", [][]int{{1, 2}, {3, -4}}, costgrid.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costgrid.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input is not observed.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g, err := costgrid.New(in)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	in[0][0] = 9

	if c, _ := g.Cost(0, 0); c != 1 {
		t.Errorf("Cost(0,0) = %d after input mutation; want 1", c)
	}
	rows := g.Rows()
	rows[1][1] = 7
	if c, _ := g.Cost(1, 1); c != 4 {
		t.Errorf("Cost(1,1) = %d after Rows mutation; want 4", c)
	}
}

// TestCost checks lookups inside the grid and OutOfBounds outside it,
// negative coordinates included.
func TestCost(t *testing.T) {
	g, err := costgrid.New([][]int{
		{1, 1, 1},
		{2, 2, 2},
		{3, 3, 3},
		{4, 4, 4},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	w, h := g.Dimensions()
	if w != 3 || h != 4 {
		t.Fatalf("Dimensions() = (%d,%d); want (3,4)", w, h)
	}
	if g.Cells() != 12 {
		t.Errorf("Cells() = %d; want 12", g.Cells())
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := g.Cost(x, y)
			if err != nil {
				t.Fatalf("Cost(%d,%d) error: %v", x, y, err)
			}
			if c != y+1 {
				t.Errorf("Cost(%d,%d) = %d; want %d", x, y, c, y+1)
			}
			if g.At(x, y) != c {
				t.Errorf("At(%d,%d) = %d; want %d", x, y, g.At(x, y), c)
			}
		}
	}

	invalid := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}}
	for _, xy := range invalid {
		if _, err := g.Cost(xy[0], xy[1]); !errors.Is(err, costgrid.ErrOutOfBounds) {
			t.Errorf("Cost(%d,%d) error = %v; want ErrOutOfBounds", xy[0], xy[1], err)
		}
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestAt_PanicsOutside verifies At treats an out-of-range query as a programmer error.
func TestAt_PanicsOutside(t *testing.T) {
	g, _ := costgrid.New([][]int{{1}})
	defer func() {
		if recover() == nil {
			t.Error("At(1,0) did not panic")
		}
	}()
	_ = g.At(1, 0)
}

// TestIndexCoordinate round-trips every cell of a 4×3 grid.
func TestIndexCoordinate(t *testing.T) {
	g, _ := costgrid.New([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	seen := make(map[int]bool)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			i := g.Index(x, y)
			if seen[i] {
				t.Fatalf("Index(%d,%d)=%d collides", x, y, i)
			}
			seen[i] = true
			if gx, gy := g.Coordinate(i); gx != x || gy != y {
				t.Errorf("Coordinate(%d) = (%d,%d); want (%d,%d)", i, gx, gy, x, y)
			}
		}
	}
}
