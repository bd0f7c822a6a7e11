// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// impl_hex.go - implementation of HexGrid(rows, cols) constructor.
//
// Canonical model:
//   • Pointy-top hexagons with circumradius 1 lattice unit.
//   • Offset layout "odd-r": odd rows are shifted right by half a hex width.
//   • Hex (r,c) is centred at (√3·(c + ½·(r&1)), 1.5·r).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Each hex emits its six corners CCW from 30° and its six sides; corners
//     and sides shared with earlier hexes are reused, so the result has
//     exactly rows·cols cells.
//
// Complexity:
//   • Time: O(rows·cols). Space: O(rows·cols) for the vertex index.

package builder

import (
	"math"

	"github.com/katalvlaran/boardtopo/planar"
)

// hexCorners is the number of sides of a hexagonal cell.
const hexCorners = 6

// HexGrid returns a Constructor that builds a rows×cols hexagonal tiling.
func HexGrid(rows, cols int) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		if err := validateDims(MethodHexGrid, rows, cols); err != nil {
			return err
		}
		if err := validateRand(MethodHexGrid, cfg, false); err != nil {
			return err
		}

		p := newPlacer(MethodHexGrid, b, cfg)
		width := math.Sqrt(3)
		corners := make([]int, hexCorners)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cx := width * (float64(c) + 0.5*float64(r&1))
				cy := 1.5 * float64(r)
				for k := 0; k < hexCorners; k++ {
					s, co := math.Sincos(float64(30+60*k) * math.Pi / 180)
					corners[k] = p.vertex(cx+co, cy+s)
				}
				if err := p.ring(corners); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
