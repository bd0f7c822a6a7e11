// Package builder provides internal helper functions used by Constructor
// implementations to place vertices and edges on a board.
//
// Design principles:
//   - Single Responsibility: placer owns vertex dedupe and jitter, nothing else.
//   - Error Context: wrap board errors with the constructor name.
//   - Determinism: jitter is drawn once per unique vertex in emission order.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boardtopo/planar"
)

// latticeQuantum is the resolution used to merge lattice points. Two points
// closer than this (in lattice units) become the same vertex.
const latticeQuantum = 1e-6

// latticeKey is a quantized lattice position.
type latticeKey struct{ u, v int64 }

// placer adds vertices at lattice positions, merging repeats, and connects
// them with GetOrAddEdge so shared tile sides are emitted once.
type placer struct {
	method string
	b      *planar.Board
	cfg    builderConfig
	ids    map[latticeKey]int
}

// newPlacer binds a placer to one constructor invocation.
func newPlacer(method string, b *planar.Board, cfg builderConfig) *placer {
	return &placer{method: method, b: b, cfg: cfg, ids: make(map[latticeKey]int)}
}

// vertex returns the ID of the vertex at lattice (u, v), adding it on first use.
// Complexity: O(1) amortized.
func (p *placer) vertex(u, v float64) int {
	k := latticeKey{
		u: int64(math.Round(u / latticeQuantum)),
		v: int64(math.Round(v / latticeQuantum)),
	}
	if id, ok := p.ids[k]; ok {
		return id
	}
	if p.cfg.jitter > 0 {
		u += (p.cfg.rng.Float64()*2 - 1) * p.cfg.jitter
		v += (p.cfg.rng.Float64()*2 - 1) * p.cfg.jitter
	}
	x, y := p.cfg.world(u, v)
	id := p.b.AddVertex(x, y)
	p.ids[k] = id

	return id
}

// polar returns the vertex at radius r and angle deg (degrees, CCW from +x).
func (p *placer) polar(r, deg float64) int {
	s, c := math.Sincos(deg * math.Pi / 180)
	return p.vertex(r*c, r*s)
}

// edge connects v0 and v1, reusing an existing edge between them.
func (p *placer) edge(v0, v1 int) error {
	if _, err := p.b.GetOrAddEdge(v0, v1); err != nil {
		return fmt.Errorf("%s: GetOrAddEdge(%d,%d): %w: %w", p.method, v0, v1, ErrConstructFailed, err)
	}

	return nil
}

// ring connects ids[i]–ids[i+1] and closes the loop.
func (p *placer) ring(ids []int) error {
	for i := range ids {
		if err := p.edge(ids[i], ids[(i+1)%len(ids)]); err != nil {
			return err
		}
	}

	return nil
}
