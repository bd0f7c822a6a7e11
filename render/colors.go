package render

import (
	"fmt"

	"github.com/katalvlaran/boardtopo/planar"
)

// AssignColors returns a colour index per cell such that adjacent cells
// get different indices. Cells are coloured greedily in ID order with the
// smallest index not used by an already coloured neighbour, so the result
// is deterministic. A cell's index never exceeds its neighbour count.
//
// Returns planar.ErrStaleState (wrapped) unless b is computed.
// Complexity: O(C + Σ|Adjacent|).
func AssignColors(b *planar.Board) ([]int, error) {
	cells, err := b.Cells()
	if err != nil {
		return nil, fmt.Errorf("AssignColors: %w", err)
	}
	out := make([]int, len(cells))
	for i := range out {
		out[i] = -1
	}
	used := make(map[int]bool)
	for _, c := range cells {
		clear(used)
		for _, n := range c.Adjacent {
			if out[n] >= 0 {
				used[out[n]] = true
			}
		}
		k := 0
		for used[k] {
			k++
		}
		out[c.ID] = k
	}
	return out, nil
}
