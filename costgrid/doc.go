// Package costgrid holds an immutable rectangular matrix of non-negative
// per-cell traversal costs.
//
// What:
//
//   - Grid wraps a rectangular [][]int with bounds-checked lookup.
//   - Entering a cell charges its cost exactly once, regardless of direction.
//   - Parse reads the textual form: one row per line, one decimal digit per cell.
//
// Why:
//
//   - Heat-loss maps, terrain traversal, any "pay to enter" lattice.
//   - A read-only grid can be shared by any number of concurrent searches.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory (deep copy).
//   - Cost, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrOutOfBounds: a query falls outside [0,W)×[0,H).
//   - ErrBadDigit: Parse met a rune that is not a decimal digit.
package costgrid
