// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e. a regular (n-1)-gon plus a centre vertex.
//   • Therefore, n ≥ 4 (the rim must be a valid polygon: n-1 ≥ 3).
//
// Contract:
//   • Rim vertices first (same layout as Cycle(n-1)), then the hub.
//   • Rim edges first, then spokes hub - rim[i] in index order.
//   • Yields n-1 triangular cells.
//
// Complexity:
//   • Time: O(n) vertices + O(2n-2) edges. Space: O(n).

package builder

import (
	"github.com/katalvlaran/boardtopo/planar"
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := validateRand(MethodWheel, cfg, false); err != nil {
			return err
		}

		p := newPlacer(MethodWheel, b, cfg)
		rim := polygon(p, n-1, 1, 90)
		if err := p.ring(rim); err != nil {
			return err
		}
		hub := p.vertex(0, 0)
		for _, v := range rim {
			if err := p.edge(hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}
