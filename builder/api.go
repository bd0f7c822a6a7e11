// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildBoard(popts, bopts, cons...). Creates b, resolves cfg, runs cons in order.
//   - BuildInto reuses the same loop against a caller-owned board.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical boards.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/boardtopo/planar"
)

// Constructor applies a deterministic board mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and edges in a stable, documented order.
//   - Produce a plane embedding (no crossing edges) for any valid input.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(b *planar.Board, cfg builderConfig) error

// BuildBoard creates a new planar.Board with board options popts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildBoard: %w" and returned
// immediately together with a nil board.
//
// The returned board is in StateBuilding (or StateEmpty if nothing was
// added); callers run Compute themselves.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildBoard(popts []planar.Option, bopts []BuilderOption, cons ...Constructor) (*planar.Board, error) {
	b := planar.NewBoard(popts...)
	if err := apply("BuildBoard", b, newBuilderConfig(bopts...), cons); err != nil {
		return nil, err
	}

	return b, nil
}

// BuildInto resolves bopts and applies cons to an existing board.
// On error the board keeps whatever the failing constructor added so far.
func BuildInto(b *planar.Board, bopts []BuilderOption, cons ...Constructor) error {
	if b == nil {
		return fmt.Errorf("BuildInto: nil board: %w", ErrConstructFailed)
	}

	return apply("BuildInto", b, newBuilderConfig(bopts...), cons)
}

// apply runs cons in order, rejecting nil entries.
func apply(method string, b *planar.Board, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// Translate returns a Constructor that runs c with its origin shifted by
// (dx, dy) world units. It lets several constructors share one board
// without overlapping.
func Translate(dx, dy float64, c Constructor) Constructor {
	return func(b *planar.Board, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Translate: nil constructor: %w", ErrConstructFailed)
		}
		cfg.originX += dx
		cfg.originY += dy

		return c(b, cfg)
	}
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Grid builds a rows×cols tiling of unit squares (rows·cols cells).
// Complexity: O(rows·cols).
//func Grid(rows, cols int) Constructor

// HexGrid builds a rows×cols pointy-top hexagonal tiling, odd rows shifted right.
// Complexity: O(rows·cols).
//func HexGrid(rows, cols int) Constructor

// RandomGrid builds Grid(rows, cols) keeping each interior edge with probability p.
// Requires an RNG (WithSeed/WithRand).
//func RandomGrid(rows, cols int, p float64) Constructor

// Cycle builds a regular n-gon (n ≥ 3, one cell).
//func Cycle(n int) Constructor

// Path builds a straight polyline of n vertices (n ≥ 2, no cells).
//func Path(n int) Constructor

// Star builds a hub with n-1 radial leaves (n ≥ 2, no cells).
//func Star(n int) Constructor

// Wheel builds a regular (n-1)-gon plus a hub with spokes (n ≥ 4, n-1 cells).
//func Wheel(n int) Constructor

// PlatonicSolid builds the Schlegel diagram of a Platonic solid (F-1 cells).
//func PlatonicSolid(name PlatonicName) Constructor
