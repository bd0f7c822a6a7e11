// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex i sits at lattice (i, 0); edges i - i+1 in ascending order.
//   - A path has no cycle: Compute yields no cells.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(n).

package builder

import (
	"github.com/katalvlaran/boardtopo/planar"
)

// Path returns a Constructor that builds a straight polyline of n vertices.
func Path(n int) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := validateRand(MethodPath, cfg, false); err != nil {
			return err
		}

		p := newPlacer(MethodPath, b, cfg)
		prev := p.vertex(0, 0)
		for i := 1; i < n; i++ {
			cur := p.vertex(float64(i), 0)
			if err := p.edge(prev, cur); err != nil {
				return err
			}
			prev = cur
		}

		return nil
	}
}
