// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// constants.go — method names, minima and defaults.

package builder

// Method names used as error prefixes.
const (
	MethodBuildPuzzle   = "BuildPuzzle"
	MethodApply         = "Apply"
	MethodHexWheel      = "HexWheel"
	MethodRandomLoop    = "RandomLoop"
	MethodClues         = "Clues"
	MethodClearSolution = "ClearSolution"
)

// MinLayers is the smallest wheel: a single hexagon.
const MinLayers = 1

// Probability bounds for WithHideRatio.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Deterministic defaults.
const (
	// DefaultCoverage is the share of faces RandomLoop encloses.
	DefaultCoverage = 0.5
	// DefaultHideRatio keeps every clue visible.
	DefaultHideRatio = 0.0
)
