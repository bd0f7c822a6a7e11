package planar

import (
	"fmt"
	"math"
)

// vertexStore owns vertex positions. IDs are slice indices, so they are
// dense and never reused; there is no removal.
type vertexStore struct {
	pos []Point
}

// add appends a vertex and returns its ID.
// Complexity: O(1) amortized.
func (s *vertexStore) add(p Point) int {
	s.pos = append(s.pos, p)
	return len(s.pos) - 1
}

// len returns the number of vertices.
func (s *vertexStore) len() int {
	return len(s.pos)
}

// valid reports whether id names an existing vertex.
func (s *vertexStore) valid(id int) bool {
	return id >= 0 && id < len(s.pos)
}

// check returns ErrInvalidVertex wrapped with method context if id is out of range.
func (s *vertexStore) check(method string, id int) error {
	if !s.valid(id) {
		return fmt.Errorf("%s: vertex %d not in [0,%d): %w", method, id, len(s.pos), ErrInvalidVertex)
	}
	return nil
}

// at returns the position of vertex id. The caller guarantees validity.
func (s *vertexStore) at(id int) Point {
	return s.pos[id]
}

// checkPos returns ErrInvalidPosition wrapped with method context unless
// both coordinates are finite.
func checkPos(method string, p Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return fmt.Errorf("%s: (%g, %g): %w", method, p.X, p.Y, ErrInvalidPosition)
	}
	return nil
}

// move overwrites the position of vertex id.
func (s *vertexStore) move(id int, p Point) error {
	if err := s.check("MoveVertex", id); err != nil {
		return err
	}
	if err := checkPos("MoveVertex", p); err != nil {
		return err
	}
	s.pos[id] = p
	return nil
}

// snapshot returns a copy of all positions in ID order.
// Complexity: O(V).
func (s *vertexStore) snapshot() []Point {
	return append([]Point(nil), s.pos...)
}
