package planar

import (
	"math"
	"sort"

	"github.com/Travis-Britz/structures/stack"
)

// Half-edge encoding: edge e owns half-edges 2e (V0→V1) and 2e+1 (V1→V0),
// so the twin of h is h^1 and no separate half-edge records are stored.

// halfFrom returns the origin vertex of half-edge h.
func halfFrom(es *edgeStore, h int) int {
	e := es.edges[h>>1]
	if h&1 == 0 {
		return e.V0
	}
	return e.V1
}

// halfTo returns the destination vertex of half-edge h.
func halfTo(es *edgeStore, h int) int {
	return halfFrom(es, h^1)
}

// trace is one closed boundary walk.
type trace struct {
	halves    []int   // half-edges in walk order
	component int     // connected component of the walk
	area      float64 // signed shoelace area; > 0 for counter-clockwise
	outer     bool    // unbounded face of its component
}

// traceResult is the output of faceTracer.run.
type traceResult struct {
	traces     []trace
	components int // components with ≥1 primary edge
	cyclic     int // components left after filament peeling
	folded     int // non-primary (parallel) edges
	dangling   int // filament edges peeled before the walk
}

// faceTracer computes the faces of the planar embedding described by a
// vertex store and an edge store. It is rebuilt from scratch on every run.
type faceTracer struct {
	vs *vertexStore
	es *edgeStore

	active []bool  // per edge: takes part in the walk
	inc    [][]int // per vertex: incident active edge IDs
	ring   [][]int // per vertex: outgoing half-edges sorted by angle
	slot   []int   // per half-edge: index inside ring[halfFrom(h)]
}

func newFaceTracer(vs *vertexStore, es *edgeStore) *faceTracer {
	return &faceTracer{vs: vs, es: es}
}

// run executes the full pipeline: fold parallels, peel filaments, label
// components, order half-edges angularly, walk boundaries, pick outer faces.
// Complexity: O(V + E·log Δ) time, O(V + E) memory.
func (t *faceTracer) run() traceResult {
	var res traceResult
	ne := t.es.len()

	// 1) Fold parallel edges: only the lowest-ID edge per vertex pair survives.
	res.folded = t.fold()
	_, res.components = t.label()

	// 2) Peel filaments so that every remaining vertex has degree 0 or ≥ 2.
	res.dangling = t.peel()

	// 3) Label the components that still carry edges; each owns one outer face.
	comp, ncomp := t.label()
	res.cyclic = ncomp

	// 4) Angular order of outgoing half-edges per vertex.
	t.order()

	// 5) Walk every unvisited half-edge.
	visited := make([]bool, 2*ne)
	for h := 0; h < 2*ne; h++ {
		if !t.active[h>>1] || visited[h] {
			continue
		}
		halves, ok := t.walk(h, visited)
		if !ok {
			continue
		}
		res.traces = append(res.traces, trace{
			halves:    halves,
			component: comp[halfFrom(t.es, h)],
			area:      t.signedArea(halves),
		})
	}

	// 6) Exactly one outer face per component: the most negative area.
	best := make([]int, ncomp)
	for i := range best {
		best[i] = -1
	}
	for i, tr := range res.traces {
		b := best[tr.component]
		if b < 0 || tr.area < res.traces[b].area {
			best[tr.component] = i
		}
	}
	for _, i := range best {
		if i >= 0 {
			res.traces[i].outer = true
		}
	}

	return res
}

// fold marks the lowest-ID edge of every vertex pair active, builds the
// incidence lists over active edges and returns how many edges were folded.
func (t *faceTracer) fold() int {
	ne := t.es.len()
	t.active = make([]bool, ne)
	t.inc = make([][]int, t.vs.len())
	folded := 0
	for e := 0; e < ne; e++ {
		if !t.es.primary(e) {
			folded++
			continue
		}
		t.active[e] = true
		ed := t.es.edges[e]
		t.inc[ed.V0] = append(t.inc[ed.V0], e)
		t.inc[ed.V1] = append(t.inc[ed.V1], e)
	}
	return folded
}

// label assigns a component index to every vertex with an active incident
// edge (others get -1) using an explicit DFS stack.
func (t *faceTracer) label() ([]int, int) {
	comp := make([]int, len(t.inc))
	for i := range comp {
		comp[i] = -1
	}
	n := 0
	frontier := &stack.Stack[int]{}
	for start := range t.inc {
		if comp[start] >= 0 || !t.hasActive(start) {
			continue
		}
		comp[start] = n
		for v, more := start, true; more; v, more = frontier.Pop() {
			for _, e := range t.inc[v] {
				if !t.active[e] {
					continue
				}
				w := t.es.edges[e].Other(v)
				if comp[w] >= 0 {
					continue
				}
				comp[w] = n
				frontier.Push(w)
			}
		}
		n++
	}
	return comp, n
}

// hasActive reports whether v has at least one active incident edge.
func (t *faceTracer) hasActive(v int) bool {
	for _, e := range t.inc[v] {
		if t.active[e] {
			return true
		}
	}
	return false
}

// peel repeatedly removes edges hanging off degree-1 vertices and returns
// how many edges were removed. Such edges cannot separate two faces.
func (t *faceTracer) peel() int {
	deg := make([]int, len(t.inc))
	var queue []int
	for v, es := range t.inc {
		deg[v] = len(es)
		if deg[v] == 1 {
			queue = append(queue, v)
		}
	}
	removed := 0
	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		if deg[v] != 1 {
			continue // its last edge went away with the neighbour
		}
		for _, e := range t.inc[v] {
			if !t.active[e] {
				continue
			}
			t.active[e] = false
			removed++
			deg[v]--
			w := t.es.edges[e].Other(v)
			deg[w]--
			if deg[w] == 1 {
				queue = append(queue, w)
			}
			break
		}
	}
	return removed
}

// order builds ring and slot: outgoing active half-edges per vertex sorted
// by atan2(dy,dx), ties broken by neighbour ID, then edge ID.
func (t *faceTracer) order() {
	nv := len(t.inc)
	t.ring = make([][]int, nv)
	t.slot = make([]int, 2*t.es.len())
	for v := 0; v < nv; v++ {
		var ring []int
		for _, e := range t.inc[v] {
			if !t.active[e] {
				continue
			}
			h := 2 * e
			if t.es.edges[e].V0 != v {
				h++
			}
			ring = append(ring, h)
		}
		if len(ring) == 0 {
			continue
		}
		angle := make(map[int]float64, len(ring))
		origin := t.vs.at(v)
		for _, h := range ring {
			p := t.vs.at(halfTo(t.es, h))
			angle[h] = math.Atan2(p.Y-origin.Y, p.X-origin.X)
		}
		sort.Slice(ring, func(i, j int) bool {
			hi, hj := ring[i], ring[j]
			if angle[hi] != angle[hj] {
				return angle[hi] < angle[hj]
			}
			wi, wj := halfTo(t.es, hi), halfTo(t.es, hj)
			if wi != wj {
				return wi < wj
			}
			return hi < hj
		})
		for i, h := range ring {
			t.slot[h] = i
		}
		t.ring[v] = ring
	}
}

// next returns the half-edge that follows h on the face to the left of h:
// at v = halfTo(h) it is the entry immediately clockwise from v→u.
func (t *faceTracer) next(h int) int {
	v := halfTo(t.es, h)
	ring := t.ring[v]
	i := t.slot[h^1]
	return ring[(i-1+len(ring))%len(ring)]
}

// walk follows next() from start until the walk closes. It reports false
// if the walk hits an already consumed half-edge before closing, which
// cannot happen on a well-formed rotation system but keeps the loop bounded.
func (t *faceTracer) walk(start int, visited []bool) ([]int, bool) {
	var halves []int
	for h := start; ; {
		visited[h] = true
		halves = append(halves, h)
		h = t.next(h)
		if h == start {
			return halves, true
		}
		if visited[h] {
			return nil, false
		}
	}
}

// signedArea is the shoelace area of the polygon through the origins of halves.
func (t *faceTracer) signedArea(halves []int) float64 {
	var sum float64
	for i, h := range halves {
		p := t.vs.at(halfFrom(t.es, h))
		q := t.vs.at(halfFrom(t.es, halves[(i+1)%len(halves)]))
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
