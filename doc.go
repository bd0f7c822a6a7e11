// Package boardtopo computes the topology of planar game boards.
//
// A board is a set of points joined by straight segments. From that input
// boardtopo derives the bounded faces ("cells"), their boundary vertices
// and edges, and which cells share an edge. The packages are:
//
//	planar/     Board: vertex and edge stores, Compute, cell queries,
//	            point location, regions and cell paths
//	builder/    constructors for square, hex and polygon boards and
//	            Schlegel diagrams of the Platonic solids
//	boardfile/  YAML/JSON board documents
//	render/     PNG previews with adjacency colouring
//
// The boardtopo command in cmd/boardtopo wraps all four.
//
// Quick ASCII example:
//
//	3───2
//	│ 0 │
//	0───1
//
// Four vertices and four edges give one cell whose boundary is 0,1,2,3.
package boardtopo
