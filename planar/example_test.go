package planar_test

import (
	"fmt"

	"github.com/katalvlaran/boardtopo/planar"
)

// ExampleBoard builds two squares sharing an edge and inspects the topology.
//
//	5───4
//	│ 1 │
//	3───2
//	│ 0 │
//	0───1
func ExampleBoard() {
	b := planar.NewBoard()
	for _, p := range [][2]float64{{10, 10}, {20, 10}, {20, 20}, {10, 20}, {20, 30}, {10, 30}} {
		b.AddVertex(p[0], p[1])
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {2, 4}, {4, 5}, {5, 3}} {
		_, _ = b.GetOrAddEdge(e[0], e[1])
	}

	b.Compute()

	n, _ := b.NumCells()
	fmt.Println("cells:", n)
	for i := 0; i < n; i++ {
		c, _ := b.Cell(i)
		fmt.Println("cell", c.ID, "vertices", c.Vertices, "adjacent", c.Adjacent)
	}
	shared, _ := b.GetEdge(3, 2)
	k, _ := b.NumAdjCells(shared)
	fmt.Println("edge 2-3 borders", k, "cells")

	// Output:
	// cells: 2
	// cell 0 vertices [0 1 2 3] adjacent [1]
	// cell 1 vertices [2 4 5 3] adjacent [0]
	// edge 2-3 borders 2 cells
}

// ExampleBoard_NumCells shows that queries fail until Compute runs.
func ExampleBoard_NumCells() {
	b := planar.NewBoard()
	b.AddVertex(0, 0)

	_, err := b.NumCells()
	fmt.Println(err)

	b.Compute()
	n, err := b.NumCells()
	fmt.Println(n, err)

	// Output:
	// NumCells: board is building: planar: cells are stale, call Compute first
	// 0 <nil>
}
