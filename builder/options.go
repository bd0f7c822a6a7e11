// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor run by mutating builderConfig
// before the board is touched.
type BuilderOption func(*builderConfig)

// WithOrigin places lattice point (0, 0) at world position (x, y).
// Panics on non-finite input.
func WithOrigin(x, y float64) BuilderOption {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) {
		c.originX, c.originY = x, y
	}
}

// WithSpacing sets the world length of one lattice unit. Panics if s <= 0.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter displaces every generated vertex by up to j lattice units per
// axis. Requires an RNG at build time. Panics unless 0 <= j <= 0.25.
func WithJitter(j float64) BuilderOption {
	if j < 0 || j > maxJitter || math.IsNaN(j) {
		panic("builder: WithJitter(j out of [0,0.25])")
	}
	return func(c *builderConfig) {
		c.jitter = j
	}
}
