package planar

import (
	"sort"

	"github.com/Travis-Britz/structures/stack"
)

// Region returns, in ascending order, every cell reachable from cellID by
// crossing shared edges into cells accepted by allow. The start cell is
// always included. A nil allow accepts every cell.
//
// Typical use: a territory game asks which cells a player's army can reach
// through cells the player owns.
//
// Returns ErrStaleState unless computed, ErrInvalidCell for a bad cellID.
// Complexity: O(C + Σ|Adjacent|).
func (b *Board) Region(cellID int, allow func(cellID int) bool) ([]int, error) {
	if err := b.checkCell("Region", cellID); err != nil {
		return nil, err
	}
	seen := map[int]bool{cellID: true}
	out := []int{cellID}
	frontier := &stack.Stack[int]{}
	for cur, more := cellID, true; more; cur, more = frontier.Pop() {
		for _, next := range b.cells.cells[cur].Adjacent {
			if seen[next] {
				continue
			}
			if allow != nil && !allow(next) {
				continue
			}
			seen[next] = true
			out = append(out, next)
			frontier.Push(next)
		}
	}
	sort.Ints(out)
	return out, nil
}

// Reachable reports whether cell to can be reached from cell from through
// cells accepted by allow. Both endpoints are tested against allow except
// from itself. A nil allow accepts every cell.
//
// Returns ErrStaleState unless computed, ErrInvalidCell for bad IDs.
// Complexity: O(C + Σ|Adjacent|).
func (b *Board) Reachable(from, to int, allow func(cellID int) bool) (bool, error) {
	if err := b.checkCell("Reachable", to); err != nil {
		return false, err
	}
	region, err := b.Region(from, allow)
	if err != nil {
		return false, err
	}
	i := sort.SearchInts(region, to)
	return i < len(region) && region[i] == to, nil
}

// Components labels every vertex with the index of its connected component
// and returns the number of components. Vertices without edges are labelled
// -1 and not counted. Components are numbered in order of their smallest
// vertex ID. Valid in any state.
// Complexity: O(V + E).
func (b *Board) Components() ([]int, int) {
	t := newFaceTracer(&b.vertices, &b.edges)
	t.fold()
	return t.label()
}
