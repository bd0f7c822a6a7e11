package planar_test

import (
	"testing"

	"github.com/katalvlaran/boardtopo/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripBoard builds a 1×n strip of unit squares: cells are chained left to right.
func stripBoard(t *testing.T, n int) *planar.Board {
	t.Helper()
	b := planar.NewBoard()
	for i := 0; i <= n; i++ {
		b.AddVertex(float64(i), 0) // bottom row: id 2i
		b.AddVertex(float64(i), 1) // top row:    id 2i+1
	}
	for i := 0; i <= n; i++ {
		_, err := b.GetOrAddEdge(2*i, 2*i+1)
		require.NoError(t, err)
		if i < n {
			_, err = b.GetOrAddEdge(2*i, 2*i+2)
			require.NoError(t, err)
			_, err = b.GetOrAddEdge(2*i+1, 2*i+3)
			require.NoError(t, err)
		}
	}
	b.Compute()
	return b
}

// cellAt maps the left x-coordinate of a strip square to its cell ID.
func cellAt(t *testing.T, b *planar.Board) map[int]int {
	t.Helper()
	cells, err := b.Cells()
	require.NoError(t, err)
	out := make(map[int]int, len(cells))
	for _, c := range cells {
		out[int(c.Centroid.X)] = c.ID
	}
	return out
}

func TestRegionAndReachable(t *testing.T) {
	b := stripBoard(t, 5)
	at := cellAt(t, b)
	require.Len(t, at, 5)

	all, err := b.Region(at[0], nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// Block the middle square: the strip splits in two.
	blocked := at[2]
	allow := func(id int) bool { return id != blocked }

	left, err := b.Region(at[0], allow)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{at[0], at[1]}, left)

	ok, err := b.Reachable(at[0], at[4], allow)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.Reachable(at[3], at[4], allow)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = b.Reachable(at[0], 42, nil)
	assert.ErrorIs(t, err, planar.ErrInvalidCell)
}

func TestRegion_StaleBoard(t *testing.T) {
	b := stripBoard(t, 2)
	b.AddVertex(9, 9)
	_, err := b.Region(0, nil)
	assert.ErrorIs(t, err, planar.ErrStaleState)
}

func TestComponents(t *testing.T) {
	b := planar.NewBoard()
	for i := 0; i < 6; i++ {
		b.AddVertex(float64(i), 0)
	}
	_, _ = b.AddEdge(0, 1)
	_, _ = b.AddEdge(1, 2)
	_, _ = b.AddEdge(4, 5)
	_, _ = b.AddEdge(5, 4) // parallel: same component

	labels, n := b.Components()
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{0, 0, 0, -1, 1, 1}, labels)
	assert.Equal(t, planar.StateBuilding, b.State(), "labelling does not need Compute")
}
