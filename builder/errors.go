// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w and the method name prefix.
//   - Runtime code never panics; validation panics stay in WithX constructors.

package builder

import "errors"

// ErrTooFewLayers indicates a wheel size below MinLayers.
var ErrTooFewLayers = errors.New("builder: too few layers")

// ErrInvalidProbability indicates a ratio outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a puzzle could not be constructed: a nil
// constructor, a puzzle without faces for RandomLoop, or a wheel whose lattice
// did not close.
var ErrConstructFailed = errors.New("builder: construction failed")
