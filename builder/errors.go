// SPDX-License-Identifier: MIT
// Package: boardtopo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`; sentinels carry no parameters.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor, or jitter,
// requires a non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownVariant indicates an unknown enumerated parameter, such as a
// PlatonicName outside the declared constants.
var ErrUnknownVariant = errors.New("builder: unknown variant")

// ErrConstructFailed indicates a programmer error at the orchestration level
// (nil constructor, nil board) or a failure reported by the board itself.
var ErrConstructFailed = errors.New("builder: construction failed")
