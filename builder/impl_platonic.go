// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
//     (else ErrUnknownVariant).
//   • Vertices are emitted shell by shell (outer first), edges in dataset order.
//   • The drawing is a Schlegel diagram: one face of the solid becomes the
//     outer face, so Compute yields F-1 cells.
//
// Complexity:
//   • Time: O(V+E) for the chosen solid. Space: O(V).

package builder

import (
	"fmt"

	"github.com/katalvlaran/boardtopo/planar"
)

// PlatonicSolid returns a Constructor that draws the Schlegel diagram of
// the chosen solid, centred on the origin.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		layout, ok := platonicLayouts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %d: %w", MethodPlatonicSolid, int(name), ErrUnknownVariant)
		}
		if err := validateRand(MethodPlatonicSolid, cfg, false); err != nil {
			return err
		}

		p := newPlacer(MethodPlatonicSolid, b, cfg)
		var ids []int
		for _, s := range layout.shells {
			if s.n == 1 {
				ids = append(ids, p.polar(s.r, s.start))
				continue
			}
			ids = append(ids, polygon(p, s.n, s.r, s.start)...)
		}
		for _, e := range layout.edges {
			if err := p.edge(ids[e[0]], ids[e[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}
