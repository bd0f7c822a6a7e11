package planar_test

import (
	"testing"

	"github.com/katalvlaran/boardtopo/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	b := stripBoard(t, 4)
	at := cellAt(t, b)

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"first square", 0.5, 0.5, at[0]},
		{"third square", 2.25, 0.75, at[2]},
		{"last square", 3.9, 0.1, at[3]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := b.Locate(tc.x, tc.y)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := b.Locate(-1, 0.5)
	assert.ErrorIs(t, err, planar.ErrNotFound)
	_, err = b.Locate(2.5, 5)
	assert.ErrorIs(t, err, planar.ErrNotFound)
}

func TestLocate_NestedPrefersInnermost(t *testing.T) {
	b := planar.NewBoard()
	square := func(x0, y0, s float64) {
		base := b.NumVertices()
		b.AddVertex(x0, y0)
		b.AddVertex(x0+s, y0)
		b.AddVertex(x0+s, y0+s)
		b.AddVertex(x0, y0+s)
		for i := 0; i < 4; i++ {
			_, err := b.AddEdge(base+i, base+(i+1)%4)
			require.NoError(t, err)
		}
	}
	square(0, 0, 100)
	square(40, 40, 20)
	b.Compute()

	outer, err := b.Locate(10, 10)
	require.NoError(t, err)
	inner, err := b.Locate(50, 50)
	require.NoError(t, err)
	assert.NotEqual(t, outer, inner)

	c, err := b.Cell(inner)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, c.Area, 1e-9)
}

func TestLocate_Stale(t *testing.T) {
	b := planar.NewBoard()
	_, err := b.Locate(0, 0)
	assert.ErrorIs(t, err, planar.ErrStaleState)

	b.Compute()
	_, err = b.Locate(0, 0)
	assert.ErrorIs(t, err, planar.ErrNotFound, "an empty board has no cells")
}
