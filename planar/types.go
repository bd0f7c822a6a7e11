// Package planar declares the Vertex, Edge, Cell and Board value types,
// the lifecycle State, and the sentinel errors shared by every store.
package planar

import (
	"errors"
	"fmt"
)

// Sentinel errors for board operations.
var (
	// ErrInvalidVertex indicates a vertex ID outside [0, NumVertices) or an
	// edge request whose endpoints coincide.
	ErrInvalidVertex = errors.New("planar: invalid vertex")

	// ErrInvalidEdge indicates an edge ID outside [0, NumEdges).
	ErrInvalidEdge = errors.New("planar: invalid edge")

	// ErrInvalidCell indicates a cell ID outside [0, NumCells).
	ErrInvalidCell = errors.New("planar: invalid cell")

	// ErrNotFound indicates that a lookup matched nothing: no edge connects
	// the requested vertex pair, or no cell contains the requested point.
	ErrNotFound = errors.New("planar: not found")

	// ErrStaleState indicates a cell or adjacency query on a board whose
	// cells have not been computed since the last mutation.
	ErrStaleState = errors.New("planar: cells are stale, call Compute first")

	// ErrInvalidPosition indicates a NaN or infinite coordinate.
	ErrInvalidPosition = errors.New("planar: non-finite position")

	// ErrNilCommand indicates a nil Command passed to Board.Apply.
	ErrNilCommand = errors.New("planar: nil command")
)

// State is the lifecycle phase of a Board.
type State uint8

const (
	// StateEmpty means the board holds no vertices.
	StateEmpty State = iota
	// StateBuilding means vertices/edges exist but cell data is absent or stale.
	StateBuilding
	// StateComputed means cells are consistent with the current vertices and edges.
	StateComputed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBuilding:
		return "building"
	case StateComputed:
		return "computed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Point is a position in the board plane.
type Point struct {
	X, Y float64
}

// Vertex is a board vertex with a stable, dense ID.
type Vertex struct {
	ID  int
	Pos Point
}

// Edge is an undirected connection between two distinct vertices.
// Edge(a,b) and Edge(b,a) denote the same connection.
type Edge struct {
	ID     int
	V0, V1 int
}

// Other returns the endpoint of e opposite to v, or -1 if v is not an endpoint.
func (e Edge) Other(v int) int {
	switch v {
	case e.V0:
		return e.V1
	case e.V1:
		return e.V0
	default:
		return -1
	}
}

// Cell is a bounded face of the board.
//
// Vertices is a cyclic sequence with positive signed area (counter-clockwise
// when the Y axis points up). Edges[i] joins Vertices[i] and
// Vertices[(i+1)%n]. Adjacent lists, in ascending order, every cell that
// shares at least one edge with this one.
type Cell struct {
	ID       int
	Vertices []int
	Edges    []int
	Adjacent []int
	Area     float64
	Centroid Point
}

// NumAdjVerts returns the number of boundary vertices of c.
func (c Cell) NumAdjVerts() int {
	return len(c.Vertices)
}

// clone returns a deep copy so callers cannot mutate store internals.
func (c Cell) clone() Cell {
	out := c
	out.Vertices = append([]int(nil), c.Vertices...)
	out.Edges = append([]int(nil), c.Edges...)
	out.Adjacent = append([]int(nil), c.Adjacent...)
	return out
}

// Stats is a read-only snapshot of board sizes and the last Compute result.
type Stats struct {
	State            State
	Vertices         int
	Edges            int
	Cells            int
	Components       int // connected components with at least one edge
	CyclicComponents int // components that produced an outer face
	Traces           int // closed boundary walks, outer faces included
	FoldedEdges      int // parallel edges ignored by the tracer
	DanglingEdges    int // filament edges bordering no cell
}
