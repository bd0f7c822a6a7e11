package planar

import "fmt"

// Command is one discrete board mutation, as emitted by an interactive
// board editor. Every successful command leaves the board in StateBuilding
// (except an AddEdgeCmd with Reuse that finds an existing edge); the editor is expected
// to call Compute before rendering or querying cells.
type Command interface {
	Apply(b *Board) error
}

// AddVertexCmd appends a vertex. The new ID is stored in ID after Apply.
// Apply rejects a NaN or infinite position with ErrInvalidPosition.
type AddVertexCmd struct {
	X, Y float64
	ID   int
}

// Apply implements Command.
func (c *AddVertexCmd) Apply(b *Board) error {
	if err := checkPos("AddVertex", Point{X: c.X, Y: c.Y}); err != nil {
		return err
	}
	c.ID = b.AddVertex(c.X, c.Y)
	return nil
}

// MoveVertexCmd repositions an existing vertex.
type MoveVertexCmd struct {
	Vertex int
	X, Y   float64
}

// Apply implements Command.
func (c MoveVertexCmd) Apply(b *Board) error {
	return b.MoveVertex(c.Vertex, c.X, c.Y)
}

// AddEdgeCmd connects two vertices. With Reuse set it goes through
// GetOrAddEdge and never creates a parallel edge. The edge ID is stored in
// ID after Apply.
type AddEdgeCmd struct {
	V0, V1 int
	Reuse  bool
	ID     int
}

// Apply implements Command.
func (c *AddEdgeCmd) Apply(b *Board) error {
	var err error
	if c.Reuse {
		c.ID, err = b.GetOrAddEdge(c.V0, c.V1)
	} else {
		c.ID, err = b.AddEdge(c.V0, c.V1)
	}
	return err
}

// Apply runs cmds in order and stops at the first failure. Commands before
// the failing one stay applied; the error names the failing index.
// Complexity: Σ cost of cmds.
func (b *Board) Apply(cmds ...Command) error {
	for i, cmd := range cmds {
		if cmd == nil {
			return fmt.Errorf("Apply: index %d: %w", i, ErrNilCommand)
		}
		if err := cmd.Apply(b); err != nil {
			return fmt.Errorf("Apply: command %d (%T): %w", i, cmd, err)
		}
	}
	return nil
}
