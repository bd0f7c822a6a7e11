package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStores builds bare stores without going through Board, so the tracer
// stages can be inspected one by one.
func newStores(pts []Point, pairs [][2]int) (*vertexStore, *edgeStore) {
	vs := &vertexStore{}
	for _, p := range pts {
		vs.add(p)
	}
	es := newEdgeStore()
	for _, pr := range pairs {
		es.add(pr[0], pr[1])
	}
	return vs, &es
}

func TestHalfEdgeEncoding(t *testing.T) {
	_, es := newStores(make([]Point, 3), [][2]int{{0, 1}, {2, 1}})
	assert.Equal(t, 0, halfFrom(es, 0))
	assert.Equal(t, 1, halfTo(es, 0))
	assert.Equal(t, 1, halfFrom(es, 1))
	assert.Equal(t, 0, halfTo(es, 1))
	assert.Equal(t, 2, halfFrom(es, 2))
	assert.Equal(t, 1, halfFrom(es, 3))
}

func TestFaceTracer_AngularOrder(t *testing.T) {
	// Star around vertex 0: east, north, west, south, plus a second east
	// neighbour at the same angle to exercise the tie-break.
	vs, es := newStores(
		[]Point{{0, 0}, {10, 0}, {0, 10}, {-10, 0}, {0, -10}, {5, 0}},
		[][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}},
	)
	tr := newFaceTracer(vs, es)
	tr.active = []bool{true, true, true, true, true}
	tr.inc = make([][]int, vs.len())
	for e := 0; e < es.len(); e++ {
		ed := es.at(e)
		tr.inc[ed.V0] = append(tr.inc[ed.V0], e)
		tr.inc[ed.V1] = append(tr.inc[ed.V1], e)
	}
	tr.order()

	var got []int
	for _, h := range tr.ring[0] {
		got = append(got, halfTo(es, h))
	}
	// atan2 ascending: south (-π/2), east (0; ids 1 then 5), north, west (π).
	assert.Equal(t, []int{4, 1, 5, 2, 3}, got)
	for i, h := range tr.ring[0] {
		assert.Equal(t, i, tr.slot[h])
	}
}

func TestFaceTracer_PeelAndLabel(t *testing.T) {
	// Triangle 0-1-2 with a path 2-3-4 hanging off it, and a lone edge 5-6.
	vs, es := newStores(
		[]Point{{0, 0}, {10, 0}, {5, 10}, {5, 20}, {5, 30}, {50, 50}, {60, 50}},
		[][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {5, 6}},
	)
	res := newFaceTracer(vs, es).run()

	assert.Equal(t, 2, res.components)
	assert.Equal(t, 1, res.cyclic)
	assert.Equal(t, 3, res.dangling)
	require.Len(t, res.traces, 2)

	outer := 0
	for _, tr := range res.traces {
		if tr.outer {
			outer++
			assert.Less(t, tr.area, 0.0)
		} else {
			assert.InDelta(t, 50.0, tr.area, 1e-9)
		}
	}
	assert.Equal(t, 1, outer)
}

func TestFaceTracer_EveryActiveHalfEdgeVisitedOnce(t *testing.T) {
	vs, es := newStores(
		[]Point{{10, 10}, {20, 0}, {30, 5}, {25, 15}, {5, 25}, {35, 30}, {40, 10}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 4}, {0, 3}, {3, 4}, {3, 5}, {5, 6}, {2, 6}},
	)
	res := newFaceTracer(vs, es).run()

	seen := make(map[int]int)
	for _, tr := range res.traces {
		for _, h := range tr.halves {
			seen[h]++
		}
	}
	assert.Len(t, seen, 2*es.len())
	for h, n := range seen {
		assert.Equal(t, 1, n, "half-edge %d", h)
	}
}

func TestRotateToMinVertex(t *testing.T) {
	// Square walk starting at vertex 2: 2→3, 3→0, 0→1, 1→2.
	_, es := newStores(make([]Point, 4), [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	halves := []int{4, 6, 0, 2}
	got := rotateToMinVertex(es, halves)
	assert.Equal(t, []int{0, 2, 4, 6}, got)
	assert.Equal(t, []int{4, 6, 0, 2}, halves, "input must not be modified")
}

func TestCentroid_DegenerateFallsBackToMean(t *testing.T) {
	vs, _ := newStores([]Point{{0, 0}, {3, 0}, {6, 0}}, nil)
	c := centroid(vs, []int{0, 1, 2}, 0)
	assert.Equal(t, Point{X: 3, Y: 0}, c)
}
