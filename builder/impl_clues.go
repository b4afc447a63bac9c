// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// impl_clues.go — Clues and ClearSolution.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// Clues returns a Constructor that sets every face's clue to the number of its
// edges on the solution loop, then hides each clue with probability
// cfg.hideRatio. A hide ratio above zero requires an RNG.
//
// Errors: ErrInvalidProbability, ErrNeedRandSource, ErrEdgeNotFound (puzzle).
func Clues() Constructor {
	return func(p *puzzle.Puzzle, cfg builderConfig) error {
		if err := validateProbability(MethodClues, cfg.hideRatio); err != nil {
			return err
		}
		if cfg.hideRatio > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: hide ratio %g: %w", MethodClues, cfg.hideRatio, ErrNeedRandSource)
		}

		hidden := 0
		for fid := range p.Faces {
			f := &p.Faces[fid]
			clue := 0
			for _, eid := range f.EdgeIDs {
				e, err := p.Edge(eid)
				if err != nil {
					return fmt.Errorf("%s: face %d: %w", MethodClues, fid, err)
				}
				if e.Solution {
					clue++
				}
			}
			f.Clue = clue
			if cfg.hideRatio > 0 && cfg.rng.Float64() < cfg.hideRatio {
				f.Clue = puzzle.NoClue
				hidden++
			}
		}

		cfg.logger.Debug("clues written",
			zap.String("method", MethodClues),
			zap.Int("faces", p.NumFaces()),
			zap.Int("hidden", hidden))

		return nil
	}
}

// ClearSolution returns a Constructor that resets every solution flag and
// drops puzzle.SolvedEdgePresent. Clues are left as they are.
func ClearSolution() Constructor {
	return func(p *puzzle.Puzzle, cfg builderConfig) error {
		for i := range p.Edges {
			p.Edges[i].Solution = false
		}
		p.Params = p.Params.Without(puzzle.SolvedEdgePresent)
		cfg.logger.Debug("solution cleared", zap.String("method", MethodClearSolution))

		return nil
	}
}
