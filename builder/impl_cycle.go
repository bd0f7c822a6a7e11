// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertex i sits on the unit circle at angle 90° + 360°·i/n (CCW).
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//   • Yields one cell whose boundary is the whole polygon.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges. Space: O(n).

package builder

import (
	"github.com/katalvlaran/boardtopo/planar"
)

// Cycle returns a Constructor that builds a regular n-gon.
func Cycle(n int) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := validateRand(MethodCycle, cfg, false); err != nil {
			return err
		}

		p := newPlacer(MethodCycle, b, cfg)

		return p.ring(polygon(p, n, 1, 90))
	}
}

// polygon places n vertices evenly on a circle of radius r, starting at
// angle start (degrees) and proceeding CCW.
func polygon(p *placer, n int, r, start float64) []int {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = p.polar(r, start+360*float64(i)/float64(n))
	}

	return ids
}
