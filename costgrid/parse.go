package costgrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a grid of single-digit costs, one row per line.
// Trailing '\r' is stripped and blank lines before the first row or after
// the last row are ignored; a blank line between rows makes the grid ragged.
// Returns ErrBadDigit (with line and column) for any rune outside '0'..'9',
// otherwise the errors of New.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]int
	blank := 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			if len(rows) > 0 {
				blank++
			}
			continue
		}
		// a blank line followed by more data is an empty row
		for ; blank > 0; blank-- {
			rows = append(rows, nil)
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadDigit, ch, line, col+1)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costgrid: read input: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is ParseString that panics on error. Intended for tests and examples.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}

	return g
}
