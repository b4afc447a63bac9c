// SPDX-License-Identifier: MIT
// Package: slitherlink/puzzlefile

package puzzlefile

import "go.uber.org/zap"

// ZstdExt marks files that ReadFile and WriteFile treat as zstd-compressed.
const ZstdExt = ".zst"

// Option customizes Read and Write.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger attaches a logger that receives one debug entry per section.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("puzzlefile: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
