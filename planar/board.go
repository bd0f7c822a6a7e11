package planar

import (
	"fmt"
	"log/slog"
	"math"
)

// Board composes the vertex, edge and cell stores and tracks the lifecycle
// State. Mutations drop cell data; Compute rebuilds it from scratch.
//
// A Board is not safe for concurrent use.
type Board struct {
	vertices vertexStore
	edges    edgeStore
	cells    cellStore
	state    State
	last     traceResult
	log      *slog.Logger
}

// NewBoard returns an empty board configured by opts.
// Complexity: O(len(opts)).
func NewBoard(opts ...Option) *Board {
	b := &Board{
		edges: newEdgeStore(),
		state: StateEmpty,
		log:   discardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the current lifecycle phase.
func (b *Board) State() State {
	return b.state
}

// invalidate moves the board to StateBuilding and discards cell data.
func (b *Board) invalidate() {
	b.state = StateBuilding
	b.cells = cellStore{}
	b.last = traceResult{}
}

// requireComputed returns ErrStaleState wrapped with method context unless
// the board is in StateComputed.
func (b *Board) requireComputed(method string) error {
	if b.state != StateComputed {
		return fmt.Errorf("%s: board is %s: %w", method, b.state, ErrStaleState)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Vertices
// -----------------------------------------------------------------------------

// AddVertex appends a vertex at (x,y) and returns its ID. IDs are dense and
// increasing; coincident positions are allowed. Coordinates are not checked:
// a NaN or infinite position yields undefined cells. AddVertexCmd rejects
// them.
// Complexity: O(1) amortized.
func (b *Board) AddVertex(x, y float64) int {
	id := b.vertices.add(Point{X: x, Y: y})
	b.invalidate()
	return id
}

// MoveVertex changes the position of vertex id and invalidates cell data.
// Returns ErrInvalidVertex if id is out of range, ErrInvalidPosition for a
// NaN or infinite coordinate. The board is unchanged on error.
// Complexity: O(1).
func (b *Board) MoveVertex(id int, x, y float64) error {
	if err := b.vertices.move(id, Point{X: x, Y: y}); err != nil {
		return err
	}
	b.invalidate()
	return nil
}

// NumVertices returns the number of vertices.
func (b *Board) NumVertices() int {
	return b.vertices.len()
}

// Vertex returns vertex id. Returns ErrInvalidVertex if id is out of range.
func (b *Board) Vertex(id int) (Vertex, error) {
	if err := b.vertices.check("Vertex", id); err != nil {
		return Vertex{}, err
	}
	return Vertex{ID: id, Pos: b.vertices.at(id)}, nil
}

// Vertices returns all positions in ID order.
// Complexity: O(V).
func (b *Board) Vertices() []Point {
	return b.vertices.snapshot()
}

// Bounds returns the axis-aligned bounding box of all vertices.
// ok is false on an empty board.
// Complexity: O(V).
func (b *Board) Bounds() (lo, hi Point, ok bool) {
	if b.vertices.len() == 0 {
		return Point{}, Point{}, false
	}
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range b.vertices.pos {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi, true
}

// -----------------------------------------------------------------------------
// Edges
// -----------------------------------------------------------------------------

// checkPair validates the endpoints of an edge request.
func (b *Board) checkPair(method string, v0, v1 int) error {
	if err := b.vertices.check(method, v0); err != nil {
		return err
	}
	if err := b.vertices.check(method, v1); err != nil {
		return err
	}
	if v0 == v1 {
		return fmt.Errorf("%s: self-loop on vertex %d: %w", method, v0, ErrInvalidVertex)
	}
	return nil
}

// AddEdge creates a new edge between v0 and v1 unconditionally, even if
// the pair is already connected. Use GetOrAddEdge to keep the graph simple.
// Returns ErrInvalidVertex for out-of-range endpoints or v0 == v1.
// Complexity: O(1) amortized.
func (b *Board) AddEdge(v0, v1 int) (int, error) {
	if err := b.checkPair("AddEdge", v0, v1); err != nil {
		return -1, err
	}
	id := b.edges.add(v0, v1)
	b.invalidate()
	return id, nil
}

// GetOrAddEdge returns the edge joining {v0,v1} if one exists, otherwise it
// creates one. Reusing an edge leaves the board state unchanged.
// Returns ErrInvalidVertex for out-of-range endpoints or v0 == v1.
// Complexity: O(1) amortized.
func (b *Board) GetOrAddEdge(v0, v1 int) (int, error) {
	if err := b.checkPair("GetOrAddEdge", v0, v1); err != nil {
		return -1, err
	}
	if id, ok := b.edges.find(v0, v1); ok {
		return id, nil
	}
	id := b.edges.add(v0, v1)
	b.invalidate()
	return id, nil
}

// GetEdge returns the lowest-ID edge joining {v0,v1} regardless of
// direction. Returns ErrNotFound if there is none, ErrInvalidVertex for
// out-of-range endpoints.
// Complexity: O(1).
func (b *Board) GetEdge(v0, v1 int) (int, error) {
	if err := b.checkPair("GetEdge", v0, v1); err != nil {
		return -1, err
	}
	id, ok := b.edges.find(v0, v1)
	if !ok {
		return -1, fmt.Errorf("GetEdge: {%d,%d}: %w", v0, v1, ErrNotFound)
	}
	return id, nil
}

// NumEdges returns the number of edges, parallel edges included.
func (b *Board) NumEdges() int {
	return b.edges.len()
}

// Edge returns edge id. Returns ErrInvalidEdge if id is out of range.
func (b *Board) Edge(id int) (Edge, error) {
	if err := b.edges.check("Edge", id); err != nil {
		return Edge{}, err
	}
	return b.edges.at(id), nil
}

// Edges returns all edges in ID order.
// Complexity: O(E).
func (b *Board) Edges() []Edge {
	return b.edges.snapshot()
}

// -----------------------------------------------------------------------------
// Compute
// -----------------------------------------------------------------------------

// Compute traces all bounded faces and rebuilds every cell and adjacency
// relation from scratch. It is total and idempotent: any vertex/edge set,
// including empty, disconnected and acyclic ones, yields a (possibly empty)
// cell set, and repeated calls yield identical cells.
// Complexity: O(V + E·log Δ).
func (b *Board) Compute() {
	res := newFaceTracer(&b.vertices, &b.edges).run()
	b.cells = materialize(res, &b.vertices, &b.edges)
	b.last = res
	b.state = StateComputed

	b.log.Debug("board computed",
		"vertices", b.vertices.len(),
		"edges", b.edges.len(),
		"traces", len(res.traces),
		"cells", len(b.cells.cells),
		"components", res.components,
		"cyclic_components", res.cyclic,
		"folded_edges", res.folded,
		"dangling_edges", res.dangling,
	)
}

// -----------------------------------------------------------------------------
// Cell queries (StateComputed only)
// -----------------------------------------------------------------------------

// NumCells returns the number of cells.
// Returns ErrStaleState unless the board is computed.
func (b *Board) NumCells() (int, error) {
	if err := b.requireComputed("NumCells"); err != nil {
		return 0, err
	}
	return len(b.cells.cells), nil
}

// Cell returns a copy of cell i.
// Returns ErrStaleState unless computed, ErrInvalidCell if i is out of range.
func (b *Board) Cell(i int) (Cell, error) {
	if err := b.checkCell("Cell", i); err != nil {
		return Cell{}, err
	}
	return b.cells.cells[i].clone(), nil
}

// Cells returns copies of all cells in ID order.
// Returns ErrStaleState unless the board is computed.
func (b *Board) Cells() ([]Cell, error) {
	if err := b.requireComputed("Cells"); err != nil {
		return nil, err
	}
	out := make([]Cell, len(b.cells.cells))
	for i, c := range b.cells.cells {
		out[i] = c.clone()
	}
	return out, nil
}

// checkCell validates state and cell ID.
func (b *Board) checkCell(method string, id int) error {
	if err := b.requireComputed(method); err != nil {
		return err
	}
	if id < 0 || id >= len(b.cells.cells) {
		return fmt.Errorf("%s: cell %d not in [0,%d): %w", method, id, len(b.cells.cells), ErrInvalidCell)
	}
	return nil
}

// NumAdjVerts returns the number of boundary vertices of cellID.
func (b *Board) NumAdjVerts(cellID int) (int, error) {
	if err := b.checkCell("NumAdjVerts", cellID); err != nil {
		return 0, err
	}
	return len(b.cells.cells[cellID].Vertices), nil
}

// AdjacentCells returns the ascending IDs of cells sharing an edge with cellID.
func (b *Board) AdjacentCells(cellID int) ([]int, error) {
	if err := b.checkCell("AdjacentCells", cellID); err != nil {
		return nil, err
	}
	return append([]int(nil), b.cells.cells[cellID].Adjacent...), nil
}

// NumAdjCells returns how many cells edgeID borders: 0, 1 or 2.
func (b *Board) NumAdjCells(edgeID int) (int, error) {
	cells, err := b.edgeCells("NumAdjCells", edgeID)
	return len(cells), err
}

// EdgeCells returns the IDs of the cells bordered by edgeID, at most two.
func (b *Board) EdgeCells(edgeID int) ([]int, error) {
	cells, err := b.edgeCells("EdgeCells", edgeID)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), cells...), nil
}

func (b *Board) edgeCells(method string, edgeID int) ([]int, error) {
	if err := b.requireComputed(method); err != nil {
		return nil, err
	}
	if err := b.edges.check(method, edgeID); err != nil {
		return nil, err
	}
	return b.cells.edgeCells[edgeID], nil
}

// VertexCells returns the ascending IDs of the cells whose boundary passes
// through vertexID.
func (b *Board) VertexCells(vertexID int) ([]int, error) {
	if err := b.requireComputed("VertexCells"); err != nil {
		return nil, err
	}
	if err := b.vertices.check("VertexCells", vertexID); err != nil {
		return nil, err
	}
	return append([]int(nil), b.cells.vertexCells[vertexID]...), nil
}

// Stats returns a snapshot of sizes and of the last Compute result.
// Trace-derived counters are zero unless the board is computed.
// Complexity: O(1).
func (b *Board) Stats() Stats {
	return Stats{
		State:            b.state,
		Vertices:         b.vertices.len(),
		Edges:            b.edges.len(),
		Cells:            len(b.cells.cells),
		Components:       b.last.components,
		CyclicComponents: b.last.cyclic,
		Traces:           len(b.last.traces),
		FoldedEdges:      b.last.folded,
		DanglingEdges:    b.last.dangling,
	}
}
