// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng       = nil   (pure/deterministic unless seeded)
//   - coverage  = DefaultCoverage
//   - hideRatio = DefaultHideRatio
//   - logger    = zap.NewNop()

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Share of faces enclosed by RandomLoop, in (0,1].
	coverage float64
	// Probability of hiding a clue, validated by Clues.
	hideRatio float64
	logger    *zap.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		coverage:  DefaultCoverage,
		hideRatio: DefaultHideRatio,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
