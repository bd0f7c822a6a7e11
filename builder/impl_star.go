// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub first at the origin, then n-1 leaves on the unit circle from 90° CCW.
//   - Emits spokes in stable order hub - leaf[i].
//   - A star is a tree: every edge is a filament and Compute yields no cells.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(n).

package builder

import (
	"github.com/katalvlaran/boardtopo/planar"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := validateRand(MethodStar, cfg, false); err != nil {
			return err
		}

		p := newPlacer(MethodStar, b, cfg)
		hub := p.vertex(0, 0)
		for _, leaf := range polygon(p, n-1, 1, 90) {
			if err := p.edge(hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
