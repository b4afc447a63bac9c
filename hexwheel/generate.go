// SPDX-License-Identifier: MIT
// Package: slitherlink/hexwheel
//
// generate.go — coordinate reconstruction for a 6·k² hexagonal wheel.
//
// Per layer L:
//   - seed one wedge of 2L−1 points (apex, zigzag, corner reflection);
//   - rotate the seed into the six wedge positions.
//
// Complexity: O(V) time, O(V) space. Every copy is rotated directly from
// the seed by w·60°, so no rounding error accumulates across wedges.

package hexwheel

import (
	"math"

	"go.uber.org/zap"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// Generate returns the planar position of every vertex of a wheel with v
// vertices, indexed by the layer → wedge → offset enumeration (see SlotIndex).
//
// Guarantees:
//   - len(result) == v, all points distinct;
//   - layer 1 is the regular unit hexagon, apex (0, 1);
//   - rotating any point by −60° yields the point of the next wedge;
//   - the output is a pure function of v.
//
// Rationale:
//   - One seed wedge per layer plus six rotations keeps every layer exactly
//     6-fold symmetric; only the seed involves the zigzag and corner rules.
//   - Index arithmetic is the SlotIndex bijection, so callers can address
//     vertices by (layer, wedge, offset) without a lookup table.
//
// Complexity:
//   - O(V) time, O(V) space; O(L) scratch for the seed of layer L.
//
// Concurrency:
//   - Pure function of v; safe for concurrent use. The logger, if any, must
//     be safe for concurrent use as zap loggers are.
//
// Errors:
//   - ErrInvalidTopology, prefixed "Layers:", when v is not 6·k²;
//     nothing is returned then.
func Generate(v int, opts ...Option) ([]puzzle.Point, error) {
	cfg := newConfig(opts...)

	// Recover k exactly; rejects 0, negatives and non-square multiples of 6.
	k, err := Layers(v)
	if err != nil {
		return nil, err
	}

	// Wedge w is the seed turned by w·(−60°), each from the seed directly.
	var turns [Wedges]rotation
	for w := range turns {
		turns[w] = newRotation(float64(w) * wedgeTurn)
	}

	out := make([]puzzle.Point, v)
	for layer := 1; layer <= k; layer++ {
		seed := seedWedge(layer)
		start, size := LayerStart(layer), WedgeSize(layer)
		// Place the six copies contiguously: 6(L−1)² + w(2L−1) + j.
		for w := 0; w < Wedges; w++ {
			base := start + w*size
			for j, p := range seed {
				out[base+j] = turns[w].apply(p)
			}
		}
		cfg.logger.Debug("layer generated",
			zap.String("method", methodGenerate),
			zap.Int("layer", layer),
			zap.Int("start", start),
			zap.Int("size", LayerSize(layer)),
			zap.Float64("apex_y", seed[0].Y))
	}

	return out, nil
}

// seedWedge builds the unrotated wedge of layer L: the apex on the +y axis,
// L−1 zigzag steps to the right, then L−1 points reflected across the wedge
// bisector so the wedge wraps the hexagon corner.
func seedWedge(layer int) []puzzle.Point {
	pts := make([]puzzle.Point, WedgeSize(layer))
	pts[0] = puzzle.Point{X: 0, Y: float64(layer + (layer-1)/2)}
	for i := 1; i < layer; i++ {
		dy := -stepY
		if (layer+i)%2 == 1 {
			dy = stepY
		}
		pts[i] = pts[i-1].Add(puzzle.Point{X: stepX, Y: dy})
	}
	for i := 0; i < layer-1; i++ {
		pts[layer+i] = reflect(pts[layer-1-i])
	}

	return pts
}

// reflect mirrors p (x > 0) across the line at angle bisector from the +y axis.
// With r = |p| and θ = −(π/6 − atan(y/x)), the image is (r·sin θ, r·cos θ).
func reflect(p puzzle.Point) puzzle.Point {
	r := math.Hypot(p.X, p.Y)
	theta := -(bisector - math.Atan2(p.Y, p.X))

	return puzzle.Point{X: r * math.Sin(theta), Y: r * math.Cos(theta)}
}

type rotation struct{ sin, cos float64 }

func newRotation(angle float64) rotation {
	s, c := math.Sincos(angle)
	return rotation{sin: s, cos: c}
}

func (r rotation) apply(p puzzle.Point) puzzle.Point {
	return puzzle.Point{
		X: p.X*r.cos - p.Y*r.sin,
		Y: p.X*r.sin + p.Y*r.cos,
	}
}
