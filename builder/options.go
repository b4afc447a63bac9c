// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
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

// WithCoverage sets the share of faces RandomLoop tries to enclose.
// Panics unless 0 < fraction ≤ 1.
func WithCoverage(fraction float64) BuilderOption {
	if fraction <= 0 || fraction > 1 {
		panic("builder: WithCoverage(fraction not in (0,1])")
	}
	return func(c *builderConfig) {
		c.coverage = fraction
	}
}

// WithHideRatio sets the probability that Clues hides a face's clue.
// The range is checked by Clues (ErrInvalidProbability), so configuration
// read from files surfaces as an error rather than a panic.
func WithHideRatio(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.hideRatio = p
	}
}

// WithLogger attaches a logger for construction progress. Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
