package planar

import (
	"fmt"

	"github.com/peterstace/simplefeatures/rtree"
)

// indexCells bulk loads the bounding box of every cell into an R-tree keyed
// by cell ID. An empty cell list yields an empty, valid index.
func indexCells(cells []Cell, vs *vertexStore) *rtree.RTree {
	items := make([]rtree.BulkItem, len(cells))
	for i, c := range cells {
		items[i] = rtree.BulkItem{Box: cellBox(c, vs), RecordID: c.ID}
	}
	return rtree.BulkLoad(items)
}

// cellBox returns the axis-aligned bounding box of a cell boundary.
func cellBox(c Cell, vs *vertexStore) rtree.Box {
	p := vs.at(c.Vertices[0])
	box := rtree.Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	for _, v := range c.Vertices[1:] {
		p = vs.at(v)
		box.MinX, box.MaxX = min(box.MinX, p.X), max(box.MaxX, p.X)
		box.MinY, box.MaxY = min(box.MinY, p.Y), max(box.MaxY, p.Y)
	}
	return box
}

// Locate returns the cell whose interior contains (x, y). When cells nest
// (a component drawn inside another cell) the innermost, i.e. smallest,
// containing cell wins. A point lying exactly on a boundary may resolve to
// either neighbouring cell.
//
// Returns ErrStaleState unless computed, ErrNotFound if no cell contains the
// point (it lies in an outer face).
// Complexity: O(log C + k·n) for k candidate boxes of n vertices each.
func (b *Board) Locate(x, y float64) (int, error) {
	if err := b.requireComputed("Locate"); err != nil {
		return -1, err
	}
	best := -1
	query := rtree.Box{MinX: x, MinY: y, MaxX: x, MaxY: y}
	err := b.cells.index.RangeSearch(query, func(id int) error {
		c := &b.cells.cells[id]
		if !b.contains(c, x, y) {
			return nil
		}
		if best < 0 || c.Area < b.cells.cells[best].Area {
			best = id
		}
		return nil
	})
	if err != nil {
		return -1, fmt.Errorf("Locate: %w", err)
	}
	if best < 0 {
		return -1, fmt.Errorf("Locate: no cell contains (%g, %g): %w", x, y, ErrNotFound)
	}
	return best, nil
}

// contains is the even-odd ray test against the cell boundary walk.
// Bridges walked in both directions cancel out.
func (b *Board) contains(c *Cell, x, y float64) bool {
	in := false
	n := len(c.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := b.vertices.at(c.Vertices[i]), b.vertices.at(c.Vertices[j])
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
	}
	return in
}
