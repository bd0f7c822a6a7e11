package planar

import "fmt"

// pairKey is the unordered identity of an edge: lo ≤ hi.
type pairKey struct {
	lo, hi int
}

// keyOf normalises (a,b) into an unordered pairKey.
func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// edgeStore owns undirected connections between vertex IDs.
//
// byPair maps each unordered vertex pair to the lowest edge ID connecting it,
// which makes lookups direction-insensitive and lets AddEdge keep parallel
// edges while GetOrAddEdge reuses the first one.
type edgeStore struct {
	edges  []Edge
	byPair map[pairKey]int
}

func newEdgeStore() edgeStore {
	return edgeStore{byPair: make(map[pairKey]int)}
}

// add appends edge (v0,v1) unconditionally. Endpoints are validated by the caller.
// Complexity: O(1) amortized.
func (s *edgeStore) add(v0, v1 int) int {
	id := len(s.edges)
	s.edges = append(s.edges, Edge{ID: id, V0: v0, V1: v1})
	k := keyOf(v0, v1)
	if _, ok := s.byPair[k]; !ok {
		s.byPair[k] = id
	}
	return id
}

// find returns the lowest edge ID joining {v0,v1}.
// Complexity: O(1).
func (s *edgeStore) find(v0, v1 int) (int, bool) {
	id, ok := s.byPair[keyOf(v0, v1)]
	return id, ok
}

// len returns the number of edges, parallel ones included.
func (s *edgeStore) len() int {
	return len(s.edges)
}

// at returns edge id. The caller guarantees validity.
func (s *edgeStore) at(id int) Edge {
	return s.edges[id]
}

// check returns ErrInvalidEdge wrapped with method context if id is out of range.
func (s *edgeStore) check(method string, id int) error {
	if id < 0 || id >= len(s.edges) {
		return fmt.Errorf("%s: edge %d not in [0,%d): %w", method, id, len(s.edges), ErrInvalidEdge)
	}
	return nil
}

// primary reports whether edge id is the lowest-ID edge of its vertex pair.
// Non-primary edges are parallels and are folded away by the tracer.
func (s *edgeStore) primary(id int) bool {
	e := s.edges[id]
	return s.byPair[keyOf(e.V0, e.V1)] == id
}

// snapshot returns a copy of all edges in ID order.
// Complexity: O(E).
func (s *edgeStore) snapshot() []Edge {
	return append([]Edge(nil), s.edges...)
}
