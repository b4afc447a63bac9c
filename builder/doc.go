// Package builder assembles complete hexagonal Slitherlink puzzles: the blank
// wheel topology, a random single-loop solution, and the clues it implies.
//
// The package follows a functional-options and closure-constructor style:
//
//   - BuilderOption mutates a builderConfig before construction begins
//     (RNG, loop coverage, clue hide ratio, logger).
//   - Constructor is a closure func(*puzzle.Puzzle, builderConfig) error.
//   - BuildPuzzle resolves options once and runs constructors in order on a
//     fresh puzzle, wrapping the first failure as "BuildPuzzle: %w".
//
// Constructors:
//
//   - HexWheel(k)     blank wheel of k layers: V=6k², E=9k²−3k, F=3k²−3k+1
//     (the outer face is not stored). Vertices are positioned with
//     hexwheel.Generate and the puzzle carries puzzle.CoordsPresent.
//   - RandomLoop()    grows a simply connected region of faces and marks its
//     boundary as the solution loop. Needs WithSeed or WithRand.
//   - Clues()         writes the number of solution edges of every face as its
//     clue, then hides a WithHideRatio share of them.
//   - ClearSolution() drops every solution flag.
//
// Errors:
//
//	ErrTooFewLayers       - HexWheel(k) with k < 1.
//	ErrInvalidProbability - hide ratio outside [0,1].
//	ErrNeedRandSource     - stochastic constructor without RNG.
//	ErrConstructFailed    - nil constructor, empty puzzle, or an inconsistent wheel.
//
// Determinism: identical options, seed and constructor order yield identical
// puzzles. Runtime code never panics; option constructors panic on nonsense.
package builder
