package planar

import (
	"container/heap"
	"math"
)

// CellPath returns a shortest route of cells from cell from to cell to,
// stepping only across shared edges into cells accepted by allow, together
// with its length: the sum of distances between consecutive centroids.
// from is never tested against allow. A nil allow accepts every cell.
//
// The route starts with from and ends with to. If to is unreachable the
// route is nil and the length is +Inf.
//
// Returns ErrStaleState unless computed, ErrInvalidCell for bad IDs.
// Complexity: O((C + Σ|Adjacent|)·log C).
func (b *Board) CellPath(from, to int, allow func(cellID int) bool) ([]int, float64, error) {
	if err := b.checkCell("CellPath", from); err != nil {
		return nil, 0, err
	}
	if err := b.checkCell("CellPath", to); err != nil {
		return nil, 0, err
	}

	cells := b.cells.cells
	r := &pathRunner{
		cells: cells,
		allow: allow,
		dist:  make([]float64, len(cells)),
		prev:  make([]int, len(cells)),
		done:  make([]bool, len(cells)),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[from] = 0
	heap.Push(&r.pq, cellItem{id: from})
	r.process(to)

	if math.IsInf(r.dist[to], 1) {
		return nil, r.dist[to], nil
	}
	var route []int
	for c := to; c != -1; c = r.prev[c] {
		route = append(route, c)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, r.dist[to], nil
}

// pathRunner holds the state of one CellPath search.
type pathRunner struct {
	cells []Cell
	allow func(int) bool
	dist  []float64
	prev  []int
	done  []bool
	pq    cellPQ
}

// process settles cells in distance order until target is settled or the
// heap drains. Stale heap entries are skipped on pop.
func (r *pathRunner) process(target int) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(cellItem)
		if r.done[item.id] {
			continue
		}
		r.done[item.id] = true
		if item.id == target {
			return
		}
		r.relax(item.id)
	}
}

func (r *pathRunner) relax(u int) {
	cu := r.cells[u].Centroid
	for _, v := range r.cells[u].Adjacent {
		if r.done[v] || (r.allow != nil && !r.allow(v)) {
			continue
		}
		cv := r.cells[v].Centroid
		nd := r.dist[u] + math.Hypot(cv.X-cu.X, cv.Y-cu.Y)
		if nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
			heap.Push(&r.pq, cellItem{id: v, dist: nd})
		}
	}
}

// cellItem is a heap entry: a cell and its tentative distance.
type cellItem struct {
	id   int
	dist float64
}

// cellPQ is a min-heap of cellItem ordered by dist, then id.
type cellPQ []cellItem

func (pq cellPQ) Len() int { return len(pq) }
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
