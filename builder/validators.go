// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping the matching sentinel
// when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that got ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: builder: parameter too small".
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewVertices)
	}

	return nil
}

// validateDims checks that both tiling dimensions are ≥ MinGridDim.
func validateDims(method string, rows, cols int) error {
	if rows < MinGridDim || cols < MinGridDim {
		return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			method, rows, cols, MinGridDim, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN is rejected as well.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %f: %w",
			method, MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}

// validateRand reports ErrNeedRandSource when the config needs an RNG but
// has none: always for stochastic constructors, and whenever jitter is on.
func validateRand(method string, cfg builderConfig, stochastic bool) error {
	if cfg.rng == nil && (stochastic || cfg.jitter > 0) {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
