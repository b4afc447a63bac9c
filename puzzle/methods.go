// SPDX-License-Identifier: MIT
// Package: slitherlink/puzzle
//
// methods.go — indexed lookup, reference checks, positions and label anchors.
//
// Determinism:
//   - Every enumeration follows id order; no map iteration is involved.

package puzzle

import "fmt"

// NumVertices returns the size of the vertex catalog.
func (p *Puzzle) NumVertices() int { return len(p.Vertices) }

// NumEdges returns the size of the edge catalog.
func (p *Puzzle) NumEdges() int { return len(p.Edges) }

// NumFaces returns the size of the face catalog. OuterFace is not counted.
func (p *Puzzle) NumFaces() int { return len(p.Faces) }

// Vertex returns the vertex with the given id.
// Complexity: O(1).
func (p *Puzzle) Vertex(id int) (*Vertex, error) {
	if id < 0 || id >= len(p.Vertices) {
		return nil, fmt.Errorf("Vertex(%d): %w", id, ErrVertexNotFound)
	}

	return &p.Vertices[id], nil
}

// Edge returns the edge with the given id.
// Complexity: O(1).
func (p *Puzzle) Edge(id int) (*Edge, error) {
	if id < 0 || id >= len(p.Edges) {
		return nil, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}

	return &p.Edges[id], nil
}

// Face returns the face with the given id. OuterFace is reported as not found:
// it is a sentinel, not a stored face.
// Complexity: O(1).
func (p *Puzzle) Face(id int) (*Face, error) {
	if id < 0 || id >= len(p.Faces) {
		return nil, fmt.Errorf("Face(%d): %w", id, ErrFaceNotFound)
	}

	return &p.Faces[id], nil
}

// CheckReferences verifies that every id named by an incidence list exists:
// vertex→edge, edge→vertex, edge→face (OuterFace allowed) and face→edge.
// It also checks that each catalog entry carries its own index as id.
//
// It does not check that incidences agree with each other; that is outside
// the model's responsibility.
//
// Complexity: O(V + E + ΣdegF).
func (p *Puzzle) CheckReferences() error {
	ne, nv, nf := len(p.Edges), len(p.Vertices), len(p.Faces)
	for i := range p.Vertices {
		v := &p.Vertices[i]
		if v.ID != i {
			return fmt.Errorf("vertex at %d has id %d: %w", i, v.ID, ErrDanglingReference)
		}
		for _, eid := range v.EdgeIDs {
			if eid < 0 || eid >= ne {
				return fmt.Errorf("vertex %d references edge %d: %w", i, eid, ErrDanglingReference)
			}
		}
	}
	for i := range p.Edges {
		e := &p.Edges[i]
		if e.ID != i {
			return fmt.Errorf("edge at %d has id %d: %w", i, e.ID, ErrDanglingReference)
		}
		for _, vid := range e.Vertices {
			if vid < 0 || vid >= nv {
				return fmt.Errorf("edge %d references vertex %d: %w", i, vid, ErrDanglingReference)
			}
		}
		for _, fid := range e.Faces {
			if fid != OuterFace && (fid < 0 || fid >= nf) {
				return fmt.Errorf("edge %d references face %d: %w", i, fid, ErrDanglingReference)
			}
		}
	}
	for i := range p.Faces {
		f := &p.Faces[i]
		if f.ID != i {
			return fmt.Errorf("face at %d has id %d: %w", i, f.ID, ErrDanglingReference)
		}
		for _, eid := range f.EdgeIDs {
			if eid < 0 || eid >= ne {
				return fmt.Errorf("face %d references edge %d: %w", i, eid, ErrDanglingReference)
			}
		}
	}

	return nil
}

// Placed reports whether every vertex has a position.
func (p *Puzzle) Placed() bool {
	for i := range p.Vertices {
		if !p.Vertices[i].Placed {
			return false
		}
	}

	return true
}

// Positions returns a copy of all vertex positions in id order.
// Fails with ErrUnplaced naming the first vertex without a position.
// Complexity: O(V).
func (p *Puzzle) Positions() ([]Point, error) {
	out := make([]Point, len(p.Vertices))
	for i := range p.Vertices {
		if !p.Vertices[i].Placed {
			return nil, fmt.Errorf("Positions: vertex %d: %w", i, ErrUnplaced)
		}
		out[i] = p.Vertices[i].Pos
	}

	return out, nil
}

// SetPositions commits pts[i] as the position of vertex i for every vertex.
// The length is checked before anything is written, so the puzzle is either
// fully updated or untouched.
// Complexity: O(V).
func (p *Puzzle) SetPositions(pts []Point) error {
	if len(pts) != len(p.Vertices) {
		return fmt.Errorf("SetPositions: got %d positions for %d vertices: %w",
			len(pts), len(p.Vertices), ErrPositionCount)
	}
	for i := range p.Vertices {
		p.Vertices[i].Pos = pts[i]
		p.Vertices[i].Placed = true
	}

	return nil
}

// EdgeMidpoint returns the average of the edge's endpoint positions; it is the
// anchor used for edge labels.
func (p *Puzzle) EdgeMidpoint(id int) (Point, error) {
	e, err := p.Edge(id)
	if err != nil {
		return Point{}, err
	}
	a, err := p.placedVertex(e.Vertices[0])
	if err != nil {
		return Point{}, err
	}
	b, err := p.placedVertex(e.Vertices[1])
	if err != nil {
		return Point{}, err
	}

	return a.Add(b).Mul(0.5), nil
}

// FaceCentroid returns the average of the midpoints of the face's bounding
// edges; it is the anchor used for face labels. For a regular hexagon this is
// the cell center.
func (p *Puzzle) FaceCentroid(id int) (Point, error) {
	f, err := p.Face(id)
	if err != nil {
		return Point{}, err
	}
	if len(f.EdgeIDs) == 0 {
		return Point{}, fmt.Errorf("FaceCentroid(%d): no edges: %w", id, ErrDanglingReference)
	}
	var sum Point
	for _, eid := range f.EdgeIDs {
		m, err := p.EdgeMidpoint(eid)
		if err != nil {
			return Point{}, fmt.Errorf("FaceCentroid(%d): %w", id, err)
		}
		sum = sum.Add(m)
	}

	return sum.Mul(1 / float64(len(f.EdgeIDs))), nil
}

// SolutionEdges returns the ids of edges flagged as part of the solution loop,
// in ascending order.
func (p *Puzzle) SolutionEdges() []int {
	var out []int
	for i := range p.Edges {
		if p.Edges[i].Solution {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns a deep copy; the copy shares no slices with p.
// Complexity: O(V + E + F + ΣdegF).
func (p *Puzzle) Clone() *Puzzle {
	c := &Puzzle{
		Params:   p.Params,
		GridType: p.GridType,
		Vertices: make([]Vertex, len(p.Vertices)),
		Edges:    make([]Edge, len(p.Edges)),
		Faces:    make([]Face, len(p.Faces)),
	}
	copy(c.Edges, p.Edges)
	for i, v := range p.Vertices {
		v.EdgeIDs = append([]int(nil), v.EdgeIDs...)
		c.Vertices[i] = v
	}
	for i, f := range p.Faces {
		f.EdgeIDs = append([]int(nil), f.EdgeIDs...)
		c.Faces[i] = f
	}

	return c
}

func (p *Puzzle) placedVertex(id int) (Point, error) {
	v, err := p.Vertex(id)
	if err != nil {
		return Point{}, err
	}
	if !v.Placed {
		return Point{}, fmt.Errorf("vertex %d: %w", id, ErrUnplaced)
	}

	return v.Pos, nil
}
