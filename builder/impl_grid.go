// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// impl_grid.go - implementation of Grid(rows, cols) and RandomGrid(rows, cols, p).
//
// Canonical model:
//   • rows×cols unit squares; lattice point (c, r) for r∈[0..rows], c∈[0..cols].
//   • Vertices in row-major order (r asc, then c asc).
//   • Edges: for each (r,c) emit Right (c+1) then Up (r+1) where they exist.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Grid yields (rows+1)(cols+1) vertices, rows(cols+1)+cols(rows+1) edges,
//     rows·cols cells.
//   • RandomGrid keeps every boundary edge and each interior edge with
//     probability p; the outline is always a single closed ring.
//
// Complexity:
//   • Time: O(rows·cols). Space: O(rows·cols) for the vertex index.

package builder

import (
	"github.com/katalvlaran/boardtopo/planar"
)

// Grid returns a Constructor that builds a rows×cols square tiling.
func Grid(rows, cols int) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		if err := validateDims(MethodGrid, rows, cols); err != nil {
			return err
		}
		if err := validateRand(MethodGrid, cfg, false); err != nil {
			return err
		}

		return emitGrid(newPlacer(MethodGrid, b, cfg), rows, cols, func(bool) bool { return true })
	}
}

// RandomGrid returns a Constructor that builds Grid(rows, cols) and then
// keeps each interior edge with probability p. Dropped edges merge cells and
// may leave dangling filaments, which makes it a good fuzz fixture.
func RandomGrid(rows, cols int, p float64) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		if err := validateDims(MethodRandomGrid, rows, cols); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomGrid, p); err != nil {
			return err
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		stochastic := p > MinProbability && p < MaxProbability
		if err := validateRand(MethodRandomGrid, cfg, stochastic); err != nil {
			return err
		}

		keep := func(boundary bool) bool {
			if boundary || p == MaxProbability {
				return true
			}
			if !stochastic {
				return false
			}
			// One draw per interior edge, in emission order.
			return cfg.rng.Float64() < p
		}

		return emitGrid(newPlacer(MethodRandomGrid, b, cfg), rows, cols, keep)
	}
}

// emitGrid places all lattice points, then every edge for which keep
// returns true. keep receives whether the edge lies on the outline.
func emitGrid(p *placer, rows, cols int, keep func(boundary bool) bool) error {
	ids := make([][]int, rows+1)
	for r := 0; r <= rows; r++ {
		ids[r] = make([]int, cols+1)
		for c := 0; c <= cols; c++ {
			ids[r][c] = p.vertex(float64(c), float64(r))
		}
	}

	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			if c < cols && keep(r == 0 || r == rows) {
				if err := p.edge(ids[r][c], ids[r][c+1]); err != nil {
					return err
				}
			}
			if r < rows && keep(c == 0 || c == cols) {
				if err := p.edge(ids[r][c], ids[r+1][c]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
