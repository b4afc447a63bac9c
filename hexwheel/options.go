// SPDX-License-Identifier: MIT
// Package: slitherlink/hexwheel
//
// options.go — functional options for Generate and Apply.
//
// Contract:
//   - Option constructors validate and panic on meaningless input (nil
//     logger, nil order). Generate and Apply never panic.
//   - Options are applied in order; the last one wins.

package hexwheel

import "go.uber.org/zap"

// Option customizes Generate and Apply.
type Option func(*config)

type config struct {
	// order[slot] is the vertex id receiving the point of that slot; nil is identity.
	order []int
	// force regenerates positions even when the puzzle declares explicit coordinates.
	force  bool
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrder supplies the slot→vertex-id permutation used by Apply for loaders
// whose ids do not follow the layer → wedge → offset enumeration. The slice is
// copied. Panics on nil; validity is checked by Apply (ErrBadOrder).
func WithOrder(order []int) Option {
	if order == nil {
		panic("hexwheel: WithOrder(nil)")
	}
	cp := append([]int(nil), order...)
	return func(c *config) {
		c.order = cp
	}
}

// WithForce makes Apply overwrite positions even when the puzzle carries
// puzzle.CoordsPresent.
func WithForce() Option {
	return func(c *config) {
		c.force = true
	}
}

// WithLogger attaches a logger for per-layer debug output. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("hexwheel: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
