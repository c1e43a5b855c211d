// File: costgrid/example_test.go
package costgrid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// ExampleParse shows reading a digit grid and querying cells.
func ExampleParse() {
	g, err := costgrid.ParseString("241\n321\n325\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	w, h := g.Dimensions()
	c, _ := g.Cost(2, 2)
	fmt.Printf("%dx%d, cost(2,2)=%d\n", w, h, c)

	_, err = g.Cost(3, 0)
	fmt.Println(errors.Is(err, costgrid.ErrOutOfBounds))

	// Output:
	// 3x3, cost(2,2)=5
	// true
}
