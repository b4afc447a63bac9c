// SPDX-License-Identifier: MIT
// Package: slitherlink/hexwheel
//
// constants.go — method names and lattice geometry.

package hexwheel

import "math"

// Method names used as error prefixes.
const (
	methodLayers    = "Layers"
	methodGenerate  = "Generate"
	methodApply     = "Apply"
	methodSlotIndex = "SlotIndex"
	methodSlotOf    = "SlotOf"
)

// Wedges is the number of 60° sectors composing every layer.
const Wedges = 6

// Geometric constants of the unit hexagonal lattice.
const (
	// sqrt3 is √3.
	sqrt3 = 1.73205080756887729352744634150587236694280525381038
	// stepX is the horizontal component of one zigzag step.
	stepX = sqrt3 / 2
	// stepY is the magnitude of the vertical component of one zigzag step.
	stepY = 0.5
	// bisector is the angle between the wedge bisector and the +y axis.
	bisector = math.Pi / 6
	// wedgeTurn is the rotation between consecutive wedge copies (clockwise).
	wedgeTurn = -math.Pi / 3
)
