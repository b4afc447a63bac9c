// Package slitherlink is a toolkit for Slitherlink puzzles on layered
// hexagonal grids.
//
// A wheel of k layers has V = 6·k² vertices, 9k²−3k edges and 3k²−3k+1
// hexagonal faces. Puzzle files often carry only topology; the coordinate
// generator rebuilds the planar layout from V alone.
//
// Packages:
//
//	puzzle/          — vertices, edges, faces, the params bitmask, indexed lookup
//	hexwheel/        — coordinate generator, slot ↔ index bijection, scaling
//	builder/         — blank wheels, random single-loop solutions, clues
//	puzzlefile/      — reader/writer for the line-oriented puzzle format
//	render/          — SVG and PNG output with a YAML style
//	internal/config/ — YAML configuration for the CLI
//	cmd/slitherhex/  — command line: generate, coords, render
//
// Quick start:
//
//	p, _ := builder.BuildPuzzle([]builder.BuilderOption{builder.WithSeed(1)},
//		builder.HexWheel(4), builder.RandomLoop(), builder.Clues())
//	sc, _ := render.NewScene(p, render.DefaultStyle())
//	_ = render.WriteSVG(os.Stdout, sc)
//
// Loading a file without coordinates:
//
//	p, _ := puzzlefile.ReadFile("puzzle.txt")
//	_ = hexwheel.Apply(p) // no-op when the file carried its own coordinates
//
// Files named *.zst are read and written zstd-compressed by puzzlefile.
//
// Nothing here solves puzzles or checks that incidences agree; the model
// only guarantees that every referenced id exists.
package slitherlink
