// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • origin  = (0, 0)
//   • spacing = 10   (world units per lattice unit)
//   • rng     = nil  (pure/deterministic unless seeded)
//   • jitter  = 0    (exact lattice positions)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// World position of lattice point (0, 0).
	originX, originY float64
	// World units per lattice unit; > 0.
	spacing float64
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Maximum per-axis displacement in lattice units; 0 disables.
	jitter float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSpacing = 10.0 // world units per lattice unit
	maxJitter      = 0.25 // keeps neighbouring tiles from crossing
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{spacing: defaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// world maps lattice coordinates (u, v) to board coordinates.
func (c builderConfig) world(u, v float64) (float64, float64) {
	return c.originX + u*c.spacing, c.originY + v*c.spacing
}
