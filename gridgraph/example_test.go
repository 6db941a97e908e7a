// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous “islands” of non-zero cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = water, anything ≥ 1 = land
//   - Conn4: 4-directional adjacency (Up/Right/Down/Left)
//   - Expect three islands, listed in row-major order of their first cell.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{0, 0, 2, 2, 0},
		{3, 0, 0, 0, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps, _ := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// components: 3
	// component 0: [(1,0) (2,0) (1,1) (0,1)]
	// component 1: [(4,0) (4,1) (3,1) (3,2) (2,2)]
	// component 2: [(0,3)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland demonstrates computing the minimal
// water‐cell conversions to connect two islands in the grid.
//
// Complexity: O(W·H·log(W·H)), Memory: O(W·H)
func ExampleGridGraph_ExpandIsland() {
	grid := [][]int{
		{1, 1, 0, 0, 2},
		{1, 0, 0, 0, 2},
		{0, 0, 0, 0, 2},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	path, cost, _ := gg.ExpandIsland(0, 1)
	fmt.Printf("Convert %d water cells along path:\n", cost)
	fmt.Println(path)

	// Output:
	// Convert 2 water cells along path:
	// [(1,0) (2,0) (3,0) (4,0)]
}
