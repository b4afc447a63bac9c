// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// validators.go — parameter checks shared by constructors. Each returns a
// sentinel wrapped with the constructor name.

package builder

import "fmt"

// validateLayers ensures k ≥ MinLayers.
func validateLayers(method string, k int) error {
	if k < MinLayers {
		return fmt.Errorf("%s: k=%d < min=%d: %w", method, k, MinLayers, ErrTooFewLayers)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateFaces ensures the puzzle has at least one face to work on.
func validateFaces(method string, nf int) error {
	if nf == 0 {
		return fmt.Errorf("%s: puzzle has no faces: %w", method, ErrConstructFailed)
	}

	return nil
}
