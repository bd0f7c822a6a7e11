package planar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/boardtopo/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_BuildsSquare(t *testing.T) {
	b := planar.NewBoard()
	v := []*planar.AddVertexCmd{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	require.NoError(t, b.Apply(v[0], v[1], v[2], v[3]))
	assert.Equal(t, 3, v[3].ID)

	e := &planar.AddEdgeCmd{V0: 3, V1: 0, Reuse: true}
	require.NoError(t, b.Apply(
		&planar.AddEdgeCmd{V0: 0, V1: 1},
		&planar.AddEdgeCmd{V0: 1, V1: 2},
		&planar.AddEdgeCmd{V0: 2, V1: 3},
		e,
	))
	assert.Equal(t, 3, e.ID)

	b.Compute()
	n, err := b.NumCells()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Moving a vertex is a mutation: cells must be recomputed.
	require.NoError(t, b.Apply(planar.MoveVertexCmd{Vertex: 2, X: 20, Y: 20}))
	assert.Equal(t, planar.StateBuilding, b.State())
	b.Compute()
	c, err := b.Cell(0)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, c.Area, 1e-9)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	b := planar.NewBoard()
	err := b.Apply(
		&planar.AddVertexCmd{X: 0, Y: 0},
		&planar.AddVertexCmd{X: 1, Y: 0},
		&planar.AddEdgeCmd{V0: 0, V1: 5},
		&planar.AddVertexCmd{X: 2, Y: 0},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, planar.ErrInvalidVertex)
	assert.Contains(t, err.Error(), "command 2")
	assert.Equal(t, 2, b.NumVertices(), "commands after the failure are not applied")

	assert.ErrorIs(t, b.Apply(nil), planar.ErrNilCommand)
}

func TestNonFinitePositions(t *testing.T) {
	b := planar.NewBoard()
	require.NoError(t, b.Apply(&planar.AddVertexCmd{X: 1, Y: 2}))
	b.Compute()

	for _, p := range [][2]float64{{math.NaN(), 0}, {0, math.Inf(1)}, {math.Inf(-1), 3}} {
		err := b.Apply(&planar.AddVertexCmd{X: p[0], Y: p[1]})
		assert.ErrorIs(t, err, planar.ErrInvalidPosition)

		err = b.MoveVertex(0, p[0], p[1])
		assert.ErrorIs(t, err, planar.ErrInvalidPosition)
	}

	assert.Equal(t, 1, b.NumVertices())
	v, err := b.Vertex(0)
	require.NoError(t, err)
	assert.Equal(t, planar.Point{X: 1, Y: 2}, v.Pos)
	assert.Equal(t, planar.StateComputed, b.State(), "rejected moves leave cells intact")
}
