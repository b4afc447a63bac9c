// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// impl_loop.go — RandomLoop: a random single-loop solution.
//
// Algorithm:
//   - Pick a random seed face; it forms the region R.
//   - Repeatedly add a random frontier face f whose in-region neighbours,
//     read around f, form exactly one contiguous arc. R then stays a
//     topological disk, so its boundary is one simple closed loop.
//   - Stop once R covers cfg.coverage of the faces or nothing is addable.
//   - Every edge with exactly one side in R is marked as solution.
//
// Contract:
//   - Requires cfg.rng (ErrNeedRandSource) and at least one face.
//   - Faces must list their edges in cyclic order, as HexWheel does.
//   - Sets puzzle.SolvedEdgePresent; previous solution flags are replaced.
//
// The frontier (faces outside R with a neighbour inside) is kept in an ordered
// set so candidates are scanned in id order and draws stay reproducible.
//
// Complexity: O(F·|frontier|) worst case, O(F+E) space.

package builder

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/treeset"
	"go.uber.org/zap"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// RandomLoop returns a Constructor that marks a random simple loop as the
// puzzle's solution.
func RandomLoop() Constructor {
	return func(p *puzzle.Puzzle, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomLoop, ErrNeedRandSource)
		}
		nf := p.NumFaces()
		if err := validateFaces(MethodRandomLoop, nf); err != nil {
			return err
		}

		ring, err := faceNeighbours(p)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomLoop, err)
		}

		target := max(1, int(math.Round(cfg.coverage*float64(nf))))
		in := make([]bool, nf)
		frontier := treeset.NewWithIntComparator()
		grow := func(f int) {
			in[f] = true
			frontier.Remove(f)
			for _, g := range ring[f] {
				if g != puzzle.OuterFace && !in[g] {
					frontier.Add(g)
				}
			}
		}

		grow(cfg.rng.Intn(nf))
		size := 1
		for size < target {
			var candidates []int
			for it := frontier.Iterator(); it.Next(); {
				f := it.Value().(int)
				if arcCount(ring[f], in) == 1 {
					candidates = append(candidates, f)
				}
			}
			if len(candidates) == 0 {
				break
			}
			grow(candidates[cfg.rng.Intn(len(candidates))])
			size++
		}

		loop := 0
		for i := range p.Edges {
			e := &p.Edges[i]
			e.Solution = inRegion(e.Faces[0], in) != inRegion(e.Faces[1], in)
			if e.Solution {
				loop++
			}
		}
		p.Params = p.Params.With(puzzle.SolvedEdgePresent)

		cfg.logger.Debug("loop generated",
			zap.String("method", MethodRandomLoop),
			zap.Int("faces", nf),
			zap.Int("region", size),
			zap.Int("target", target),
			zap.Int("loop_edges", loop))

		return nil
	}
}

// faceNeighbours lists, for every face, the face across each of its edges in
// the face's own edge order (OuterFace on the rim).
func faceNeighbours(p *puzzle.Puzzle) ([][]int, error) {
	ring := make([][]int, p.NumFaces())
	for fid := range p.Faces {
		f := &p.Faces[fid]
		ring[fid] = make([]int, len(f.EdgeIDs))
		for j, eid := range f.EdgeIDs {
			e, err := p.Edge(eid)
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", fid, err)
			}
			switch fid {
			case e.Faces[0]:
				ring[fid][j] = e.Faces[1]
			case e.Faces[1]:
				ring[fid][j] = e.Faces[0]
			default:
				return nil, fmt.Errorf("face %d lists edge %d which does not border it: %w", fid, eid, ErrConstructFailed)
			}
		}
	}

	return ring, nil
}

// arcCount returns the number of maximal runs of in-region faces in the
// cyclic neighbour list. A face surrounded entirely by R returns 0.
func arcCount(neighbours []int, in []bool) int {
	n := len(neighbours)
	runs := 0
	for j := 0; j < n; j++ {
		prev := inRegion(neighbours[(j+n-1)%n], in)
		if inRegion(neighbours[j], in) && !prev {
			runs++
		}
	}

	return runs
}

func inRegion(fid int, in []bool) bool {
	return fid != puzzle.OuterFace && in[fid]
}
