// SPDX-License-Identifier: MIT
// Package: slitherlink/hexwheel
//
// apply.go — writes generated positions into a puzzle model.

package hexwheel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// Apply positions every vertex of p on the hexagonal wheel.
//
// When p.Params carries puzzle.CoordsPresent the explicit coordinates are kept
// and Apply returns nil without touching p, unless WithForce is given.
// Otherwise slot index i goes to vertex id i, or to order[i] under WithOrder.
//
// Params is never modified.
//
// Complexity:
//   - O(V) time and space: one Generate plus an optional permutation.
//
// Concurrency:
//   - Writes every vertex of p; the caller must own p exclusively.
//
// Errors:
//   - ErrNilPuzzle for a nil p.
//   - ErrInvalidTopology when p.NumVertices() is not 6·k².
//   - ErrBadOrder when WithOrder is not a permutation of 0..V−1.
//
// On any error p is unchanged.
func Apply(p *puzzle.Puzzle, opts ...Option) error {
	if p == nil {
		return fmt.Errorf("%s: %w", methodApply, ErrNilPuzzle)
	}
	cfg := newConfig(opts...)
	if p.Params.Has(puzzle.CoordsPresent) && !cfg.force {
		cfg.logger.Debug("explicit coordinates kept",
			zap.String("method", methodApply),
			zap.Int("vertices", p.NumVertices()))
		return nil
	}

	// Generate first and permute into a fresh slice so failures leave p as is.
	pts, err := Generate(p.NumVertices(), opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", methodApply, err)
	}
	if cfg.order != nil {
		if pts, err = permute(pts, cfg.order); err != nil {
			return fmt.Errorf("%s: %w", methodApply, err)
		}
	}

	return p.SetPositions(pts)
}

// permute returns out with out[order[slot]] = pts[slot].
func permute(pts []puzzle.Point, order []int) ([]puzzle.Point, error) {
	n := len(pts)
	if len(order) != n {
		return nil, fmt.Errorf("order has %d entries for %d vertices: %w", len(order), n, ErrBadOrder)
	}
	seen := make([]bool, n)
	out := make([]puzzle.Point, n)
	for slot, id := range order {
		if id < 0 || id >= n || seen[id] {
			return nil, fmt.Errorf("slot %d maps to id %d: %w", slot, id, ErrBadOrder)
		}
		seen[id] = true
		out[id] = pts[slot]
	}

	return out, nil
}
