package planar

import (
	"sort"

	"github.com/peterstace/simplefeatures/rtree"
)

// cellStore owns the batch output of Compute: the cells and the derived
// edge→cell and vertex→cell relations. It is replaced wholesale on every
// Compute and never mutated cell by cell.
type cellStore struct {
	cells       []Cell
	edgeCells   [][]int // per edge, 0..2 cell IDs
	vertexCells [][]int // per vertex, ascending cell IDs
	index       *rtree.RTree
}

// materialize converts the retained traces of res into cells and derives
// every adjacency relation.
// Complexity: O(V + E + Σ|boundary|·log).
func materialize(res traceResult, vs *vertexStore, es *edgeStore) cellStore {
	cs := cellStore{
		edgeCells:   make([][]int, es.len()),
		vertexCells: make([][]int, vs.len()),
	}

	for _, tr := range res.traces {
		if tr.outer {
			continue
		}
		id := len(cs.cells)
		halves := rotateToMinVertex(es, tr.halves)

		c := Cell{
			ID:       id,
			Vertices: make([]int, len(halves)),
			Edges:    make([]int, len(halves)),
			Area:     tr.area,
		}
		for i, h := range halves {
			c.Vertices[i] = halfFrom(es, h)
			c.Edges[i] = h >> 1
		}
		c.Centroid = centroid(vs, c.Vertices, tr.area)

		// A bridge inside a face is walked twice by the same cell; record it once.
		for _, e := range c.Edges {
			if !containsInt(cs.edgeCells[e], id) {
				cs.edgeCells[e] = append(cs.edgeCells[e], id)
			}
		}
		for _, v := range c.Vertices {
			if !containsInt(cs.vertexCells[v], id) {
				cs.vertexCells[v] = append(cs.vertexCells[v], id)
			}
		}
		cs.cells = append(cs.cells, c)
	}

	// Two cells are adjacent iff some edge borders both of them.
	for _, owners := range cs.edgeCells {
		if len(owners) != 2 {
			continue
		}
		a, b := owners[0], owners[1]
		if !containsInt(cs.cells[a].Adjacent, b) {
			cs.cells[a].Adjacent = append(cs.cells[a].Adjacent, b)
			cs.cells[b].Adjacent = append(cs.cells[b].Adjacent, a)
		}
	}
	for i := range cs.cells {
		sort.Ints(cs.cells[i].Adjacent)
	}
	cs.index = indexCells(cs.cells, vs)

	return cs
}

// rotateToMinVertex rotates a closed walk so it starts at the first
// occurrence of its smallest origin vertex, which makes cell boundaries
// independent of the half-edge the walk started from.
func rotateToMinVertex(es *edgeStore, halves []int) []int {
	best := 0
	for i := 1; i < len(halves); i++ {
		if halfFrom(es, halves[i]) < halfFrom(es, halves[best]) {
			best = i
		}
	}
	out := make([]int, 0, len(halves))
	out = append(out, halves[best:]...)
	return append(out, halves[:best]...)
}

// centroid returns the area centroid of the polygon, falling back to the
// vertex mean for degenerate (zero-area) boundaries.
func centroid(vs *vertexStore, verts []int, area float64) Point {
	n := len(verts)
	if area == 0 {
		var c Point
		for _, v := range verts {
			p := vs.at(v)
			c.X += p.X
			c.Y += p.Y
		}
		c.X /= float64(n)
		c.Y /= float64(n)
		return c
	}
	var cx, cy float64
	for i, v := range verts {
		p := vs.at(v)
		q := vs.at(verts[(i+1)%n])
		cross := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

func containsInt(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}
