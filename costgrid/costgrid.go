package costgrid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs indexed as values[y][x].
// It deep-copies the input so later changes to values are not observed.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCost.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCost, x, y, c)
			}
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Cost returns the cost of entering (x, y).
// Returns ErrOutOfBounds for any coordinate outside [0,W)×[0,H).
func (g *Grid) Cost(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}

	return g.cells[y][x], nil
}

// At returns the cost of entering (x, y) without reporting an error.
// Callers must have checked InBounds; an out-of-range query panics.
func (g *Grid) At(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("costgrid: At(%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}

	return g.cells[y][x]
}

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (width, height int) { return g.width, g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Cells returns W×H.
func (g *Grid) Cells() int { return g.width * g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Rows returns a deep copy of the cost matrix.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.height)
	for y := range g.cells {
		out[y] = make([]int, g.width)
		copy(out[y], g.cells[y])
	}

	return out
}
