// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/zipgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors4
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors4 demonstrates orthogonal adjacency on a 3×3 board.
// Scenario:
//
//   - The center cell (1,1) touches all four directions.
//   - The corner cell (0,0) touches only two.
//
// Neighbors are reported in N, E, S, W order with off-board cells dropped.
func ExampleGrid_Neighbors4() {
	g, _ := grid.New(3)

	for _, pos := range []grid.Position{{X: 1, Y: 1}, {X: 0, Y: 0}} {
		fmt.Printf("%v:", pos)
		for _, q := range g.Neighbors4(pos) {
			fmt.Printf(" (%v)", q)
		}
		fmt.Println()
	}

	// Output:
	// 1,1: (1,0) (2,1) (1,2) (0,1)
	// 0,0: (1,0) (0,1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Index / At
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Index demonstrates the row-major index mapping used to back
// visited sets with flat slices.
func ExampleGrid_Index() {
	g, _ := grid.New(4)

	p := grid.Position{X: 3, Y: 2}
	idx := g.Index(p)
	fmt.Println("index:", idx)
	fmt.Println("back:", g.At(idx))

	// Output:
	// index: 11
	// back: 3,2
}
