package costgrid

import "errors"

// Sentinel errors for costgrid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("costgrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costgrid: all rows must have the same length")
	// ErrNegativeCost indicates a cell cost below zero.
	ErrNegativeCost = errors.New("costgrid: cell cost must be non-negative")
	// ErrOutOfBounds indicates a lookup outside the grid.
	ErrOutOfBounds = errors.New("costgrid: coordinate out of bounds")
	// ErrBadDigit indicates a non-digit rune in textual input.
	ErrBadDigit = errors.New("costgrid: cell is not a decimal digit")
)

// Grid is an immutable W×H matrix of traversal costs.
// cells[y][x] holds the cost of entering (x, y).
type Grid struct {
	width, height int
	cells         [][]int
}
