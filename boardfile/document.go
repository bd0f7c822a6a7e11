package boardfile

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/boardtopo/planar"
)

// Version is the schema version written by this package and the only one
// it reads.
const Version = 1

// Document is the persisted form of a board.
type Document struct {
	Version  int         `yaml:"version" json:"version"`
	ID       string      `yaml:"id,omitempty" json:"id,omitempty"`
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Vertices [][]float64 `yaml:"vertices" json:"vertices"`
	Edges    [][]int     `yaml:"edges" json:"edges"`
}

// FromBoard snapshots the vertices and edges of b. Cell data is ignored, so
// b may be in any state. The ID is left empty; SaveFile assigns one.
// Complexity: O(V + E).
func FromBoard(b *planar.Board, name string) *Document {
	pts := b.Vertices()
	edges := b.Edges()
	doc := &Document{
		Version:  Version,
		Name:     name,
		Vertices: make([][]float64, len(pts)),
		Edges:    make([][]int, len(edges)),
	}
	for i, p := range pts {
		doc.Vertices[i] = []float64{p.X, p.Y}
	}
	for i, e := range edges {
		doc.Edges[i] = []int{e.V0, e.V1}
	}
	return doc
}

// Validate checks the whole document against the schema and returns the
// first violation wrapped with ErrFormat.
// Complexity: O(V + E).
func (d *Document) Validate() error {
	if d.Version != Version {
		return fmt.Errorf("version %d (want %d): %w", d.Version, Version, ErrFormat)
	}
	if d.ID != "" {
		if _, err := uuid.Parse(d.ID); err != nil {
			return fmt.Errorf("id %q: %v: %w", d.ID, err, ErrFormat)
		}
	}
	for i, rec := range d.Vertices {
		if len(rec) != 2 {
			return fmt.Errorf("vertex %d: %d fields (want 2): %w", i, len(rec), ErrFormat)
		}
		for _, f := range rec {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("vertex %d: non-finite coordinate: %w", i, ErrFormat)
			}
		}
	}
	nv := len(d.Vertices)
	for i, rec := range d.Edges {
		if len(rec) != 2 {
			return fmt.Errorf("edge %d: %d fields (want 2): %w", i, len(rec), ErrFormat)
		}
		for _, v := range rec {
			if v < 0 || v >= nv {
				return fmt.Errorf("edge %d: vertex %d out of range [0,%d): %w", i, v, nv, ErrFormat)
			}
		}
		if rec[0] == rec[1] {
			return fmt.Errorf("edge %d: self-loop on vertex %d: %w", i, rec[0], ErrFormat)
		}
	}
	return nil
}

// Board validates d and replays it into a new board built with opts. The
// result is in StateBuilding (StateEmpty for an empty document); vertex and
// edge IDs equal record indices. Parallel edges are replayed as stored.
// Complexity: O(V + E).
func (d *Document) Board(opts ...planar.Option) (*planar.Board, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("Board: %w", err)
	}
	cmds := make([]planar.Command, 0, len(d.Vertices)+len(d.Edges))
	for _, rec := range d.Vertices {
		cmds = append(cmds, &planar.AddVertexCmd{X: rec[0], Y: rec[1]})
	}
	for _, rec := range d.Edges {
		cmds = append(cmds, &planar.AddEdgeCmd{V0: rec[0], V1: rec[1]})
	}

	all := append([]planar.Option{planar.WithCapacity(len(d.Vertices), len(d.Edges))}, opts...)
	b := planar.NewBoard(all...)
	if err := b.Apply(cmds...); err != nil {
		return nil, fmt.Errorf("Board: %v: %w", err, ErrFormat)
	}
	return b, nil
}
