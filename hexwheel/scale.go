// SPDX-License-Identifier: MIT
// Package: slitherlink/hexwheel

package hexwheel

import "github.com/j-dobrzanski/Slitherlink/puzzle"

// Scale returns a copy of pts with every coordinate multiplied by s.
// Generation always works in lattice units; renderers scale afterwards.
func Scale(pts []puzzle.Point, s float64) []puzzle.Point {
	out := make([]puzzle.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Mul(s)
	}

	return out
}

// ScaleInPlace multiplies every coordinate of pts by s.
func ScaleInPlace(pts []puzzle.Point, s float64) {
	for i := range pts {
		pts[i] = pts[i].Mul(s)
	}
}
