package builder_test

import (
	"fmt"

	"github.com/katalvlaran/boardtopo/builder"
)

// ExampleBuildBoard builds a wheel with a 5-gon rim and lists its cells.
func ExampleBuildBoard() {
	b, err := builder.BuildBoard(nil, []builder.BuilderOption{builder.WithSpacing(100)}, builder.Wheel(6))
	if err != nil {
		fmt.Println(err)
		return
	}
	b.Compute()

	n, _ := b.NumCells()
	fmt.Println("vertices:", b.NumVertices(), "edges:", b.NumEdges(), "cells:", n)
	for i := 0; i < n; i++ {
		c, _ := b.Cell(i)
		fmt.Println("cell", c.ID, "corners", c.NumAdjVerts(), "neighbours", len(c.Adjacent))
	}

	// Output:
	// vertices: 6 edges: 10 cells: 5
	// cell 0 corners 3 neighbours 2
	// cell 1 corners 3 neighbours 2
	// cell 2 corners 3 neighbours 2
	// cell 3 corners 3 neighbours 2
	// cell 4 corners 3 neighbours 2
}

// ExampleRandomGrid shows that a seeded random grid is reproducible.
func ExampleRandomGrid() {
	opts := []builder.BuilderOption{builder.WithSeed(1)}
	a, _ := builder.BuildBoard(nil, opts, builder.RandomGrid(4, 4, 0.5))
	b, _ := builder.BuildBoard(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGrid(4, 4, 0.5))
	fmt.Println(a.NumEdges() == b.NumEdges())

	// Output:
	// true
}
