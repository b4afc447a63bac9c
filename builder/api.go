// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// api.go — public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildPuzzle(bopts, cons...). Creates an empty puzzle,
//     resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Same options, seed and constructor order ⇒ identical puzzles.

package builder

import (
	"fmt"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// Constructor applies a deterministic puzzle mutation using the resolved
// builderConfig. Constructors validate early, return wrapped sentinels and
// never panic.
type Constructor func(p *puzzle.Puzzle, cfg builderConfig) error

// BuildPuzzle creates an empty puzzle, resolves the builder configuration from
// bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildPuzzle: %w" and returned immediately; the partial puzzle
// is discarded.
//
// Typical composition:
//
//	p, err := BuildPuzzle([]BuilderOption{WithSeed(1)}, HexWheel(4), RandomLoop(), Clues())
//
// Rationale:
//   - One entry point resolves options and wraps errors the same way for
//     every composition.
//   - Constructor order is the only ordering; equal inputs give equal puzzles.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, O(K) overhead.
//
// Concurrency:
//   - Not concurrent; the returned puzzle is owned by the caller.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors wrapped via %w; branch with errors.Is against the
//     builder sentinels (ErrTooFewLayers, ErrNeedRandSource, ...).
func BuildPuzzle(bopts []BuilderOption, cons ...Constructor) (*puzzle.Puzzle, error) {
	// Start from an empty catalog; HexWheel replaces it wholesale.
	p := puzzle.New(0, 0, 0)

	// Same loop as Apply; only the error prefix differs.
	if err := apply(p, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildPuzzle, err)
	}

	return p, nil
}

// Apply resolves bopts and runs constructors on an existing puzzle, e.g. one
// read from a file, in order. Constructors mutate p in place; on error p may
// be partially modified.
//
// Errors:
//   - ErrConstructFailed for a nil puzzle or a nil constructor.
//   - Constructor errors wrapped with "Apply: %w".
func Apply(p *puzzle.Puzzle, bopts []BuilderOption, cons ...Constructor) error {
	if p == nil {
		return fmt.Errorf("%s: nil puzzle: %w", MethodApply, ErrConstructFailed)
	}
	if err := apply(p, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("%s: %w", MethodApply, err)
	}

	return nil
}

// apply runs cons sequentially on p with the resolved cfg.
func apply(p *puzzle.Puzzle, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		// A nil constructor is a programmer error; report it rather than panic.
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// Constructors wrap their own method name; the caller adds one prefix.
		if err := fn(p, cfg); err != nil {
			return err
		}
	}

	return nil
}
