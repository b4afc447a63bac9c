// SPDX-License-Identifier: MIT
// Package: slitherlink/builder
//
// impl_hexwheel.go — implementation of the HexWheel(k) constructor.
//
// Contract:
//   - k ≥ MinLayers (else ErrTooFewLayers).
//   - Replaces the puzzle's catalogs with the blank wheel:
//     V=6k², E=9k²−3k, F=3k²−3k+1.
//   - Vertex i sits at hexwheel.Generate(V)[i]; Params = Required|CoordsPresent.
//   - Edges are the unit-distance vertex pairs in ascending (low, high) order;
//     each vertex lists its edges ascending.
//   - Faces are the cells of hex distance ≤ k−1, ring by ring; every face
//     lists its six edges clockwise from the top corner.
//   - Edge.Faces holds the incident faces in face-id order, OuterFace on the rim.
//   - Clues start as NoClue, solution flags false.
//
// Complexity: O(V) time and space (hash lookups on integer lattice keys).

package builder

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/j-dobrzanski/Slitherlink/hexwheel"
	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// HexWheel returns a Constructor that builds the blank wheel of k layers.
func HexWheel(k int) Constructor {
	return func(p *puzzle.Puzzle, cfg builderConfig) error {
		if err := validateLayers(MethodHexWheel, k); err != nil {
			return err
		}
		wheel, err := hexWheel(k, cfg.logger)
		if err != nil {
			return err
		}
		*p = *wheel

		return nil
	}
}

func hexWheel(k int, logger *zap.Logger) (*puzzle.Puzzle, error) {
	nv, ne, nf := 6*k*k, 9*k*k-3*k, 3*k*k-3*k+1
	pts, err := hexwheel.Generate(nv, hexwheel.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodHexWheel, err)
	}

	byKey := make(map[latticeKey]int, nv)
	for i, pt := range pts {
		byKey[keyOf(pt)] = i
	}
	if len(byKey) != nv {
		return nil, fmt.Errorf("%s: %d distinct lattice keys for %d vertices: %w", MethodHexWheel, len(byKey), nv, ErrConstructFailed)
	}

	p := puzzle.New(nv, 0, nf)
	p.Params = puzzle.Required.With(puzzle.CoordsPresent)
	if err = p.SetPositions(pts); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodHexWheel, err)
	}

	// Edges: ascending (low, high).
	type pair struct{ lo, hi int }
	edgeOf := make(map[pair]int, ne)
	for i, pt := range pts {
		key := keyOf(pt)
		var higher []int
		for _, off := range vertexNeighbours {
			if j, ok := byKey[key.add(off)]; ok && j > i {
				higher = append(higher, j)
			}
		}
		sort.Ints(higher)
		for _, j := range higher {
			id := len(p.Edges)
			p.Edges = append(p.Edges, puzzle.Edge{
				ID:       id,
				Vertices: [2]int{i, j},
				Faces:    [2]int{puzzle.OuterFace, puzzle.OuterFace},
			})
			edgeOf[pair{i, j}] = id
			p.Vertices[i].EdgeIDs = append(p.Vertices[i].EdgeIDs, id)
			p.Vertices[j].EdgeIDs = append(p.Vertices[j].EdgeIDs, id)
		}
	}
	if len(p.Edges) != ne {
		return nil, fmt.Errorf("%s: %d edges, want %d: %w", MethodHexWheel, len(p.Edges), ne, ErrConstructFailed)
	}

	// Faces: ring by ring, edges clockwise from the top corner.
	cells := cellRings(k - 1)
	if len(cells) != nf {
		return nil, fmt.Errorf("%s: %d cells, want %d: %w", MethodHexWheel, len(cells), nf, ErrConstructFailed)
	}
	filled := make([]int, ne)
	for fid, centre := range cells {
		f := &p.Faces[fid]
		f.EdgeIDs = make([]int, 0, puzzle.HexSides)
		for j := 0; j < puzzle.HexSides; j++ {
			u, ok1 := byKey[centre.add(cornerOffsets[j])]
			v, ok2 := byKey[centre.add(cornerOffsets[(j+1)%puzzle.HexSides])]
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%s: face %d corner %d outside the wheel: %w", MethodHexWheel, fid, j, ErrConstructFailed)
			}
			eid, ok := edgeOf[pair{min(u, v), max(u, v)}]
			if !ok || filled[eid] == 2 {
				return nil, fmt.Errorf("%s: face %d side %d has no free edge: %w", MethodHexWheel, fid, j, ErrConstructFailed)
			}
			f.EdgeIDs = append(f.EdgeIDs, eid)
			p.Edges[eid].Faces[filled[eid]] = fid
			filled[eid]++
		}
	}

	logger.Debug("hex wheel built",
		zap.String("method", MethodHexWheel),
		zap.Int("layers", k),
		zap.Int("vertices", nv),
		zap.Int("edges", ne),
		zap.Int("faces", nf))

	return p, nil
}
