// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// lattice.go — exact integer addressing of the unit hexagonal lattice.
//
// A vertex at (x, y) gets the key (round(x/(√3/2)), round(y/½)). In key space
// every lattice vertex has integer coordinates, neighbours differ by (0,±2)
// or (±1,±1), and the hexagon centred on key c has its corners at
// c + cornerOffsets[j], clockwise from the top. Face centres sit at
// (2q+r, 3r) for axial cell coordinates (q, r).

package builder

import (
	"math"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

const (
	unitX = 0.86602540378443864676372317075293618347140262690519 // √3/2
	unitY = 0.5
)

type latticeKey struct{ a, b int }

func keyOf(p puzzle.Point) latticeKey {
	return latticeKey{a: int(math.Round(p.X / unitX)), b: int(math.Round(p.Y / unitY))}
}

func (k latticeKey) add(o latticeKey) latticeKey { return latticeKey{a: k.a + o.a, b: k.b + o.b} }

func (k latticeKey) scale(s int) latticeKey { return latticeKey{a: k.a * s, b: k.b * s} }

// vertexNeighbours are the key offsets of the three or fewer lattice
// neighbours of any vertex; only those present in the wheel exist.
var vertexNeighbours = [...]latticeKey{
	{0, 2}, {1, 1}, {1, -1}, {0, -2}, {-1, -1}, {-1, 1},
}

// cornerOffsets are the corners of a hexagon relative to its centre key,
// clockwise from the top.
var cornerOffsets = [puzzle.HexSides]latticeKey{
	{0, 2}, {1, 1}, {1, -1}, {0, -2}, {-1, -1}, {-1, 1},
}

// cellDirections are the centre offsets of the six neighbouring cells,
// clockwise starting at 30° from the +y axis.
var cellDirections = [puzzle.HexSides]latticeKey{
	{1, 3}, {2, 0}, {1, -3}, {-1, -3}, {-2, 0}, {-1, 3},
}

// cellRings returns the centre keys of every cell within hex distance
// radius of the origin: ring 0 first, then each ring clockwise from 30°.
func cellRings(radius int) []latticeKey {
	out := []latticeKey{{0, 0}}
	for d := 1; d <= radius; d++ {
		pos := cellDirections[0].scale(d)
		for side := 0; side < puzzle.HexSides; side++ {
			step := cellDirections[(side+2)%puzzle.HexSides]
			for s := 0; s < d; s++ {
				out = append(out, pos)
				pos = pos.add(step)
			}
		}
	}

	return out
}
