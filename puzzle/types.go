// SPDX-License-Identifier: MIT
// Package: slitherlink/puzzle
//
// types.go — core model types, parameter flags and sentinel errors.

package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for puzzle model operations.
var (
	// ErrVertexNotFound indicates a vertex id outside [0, NumVertices).
	ErrVertexNotFound = errors.New("puzzle: vertex not found")

	// ErrEdgeNotFound indicates an edge id outside [0, NumEdges).
	ErrEdgeNotFound = errors.New("puzzle: edge not found")

	// ErrFaceNotFound indicates a face id outside [0, NumFaces).
	ErrFaceNotFound = errors.New("puzzle: face not found")

	// ErrDanglingReference indicates an incidence list referencing a missing id.
	ErrDanglingReference = errors.New("puzzle: dangling reference")

	// ErrUnplaced indicates that at least one vertex has no position yet.
	ErrUnplaced = errors.New("puzzle: vertex has no position")

	// ErrPositionCount indicates a position slice whose length differs from NumVertices.
	ErrPositionCount = errors.New("puzzle: position count mismatch")
)

// OuterFace is the face id used by edges on the rim of the puzzle: the
// unbounded region outside every hexagon.
const OuterFace = -1

// NoClue marks a face without a numeric clue.
const NoClue = -1

// HexSides is the number of edges bounding every face of a hexagonal tiling.
const HexSides = 6

// Params is the bitmask describing which sections a puzzle description carries.
// Bit positions match the on-disk format.
type Params uint16

const (
	// VertexCountPresent marks the V line.
	VertexCountPresent Params = 1 << iota
	// EdgeCountPresent marks the E line.
	EdgeCountPresent
	// FaceCountPresent marks the F line.
	FaceCountPresent
	// VertexListPresent marks the vertex block.
	VertexListPresent
	// EdgeListPresent marks the edge block.
	EdgeListPresent
	// FaceListPresent marks the face block.
	FaceListPresent
	// SolvedEdgePresent marks the solution column of the edge block.
	SolvedEdgePresent
	// CoordsPresent marks the explicit coordinate block. When set, vertex
	// positions are taken verbatim and never generated.
	CoordsPresent
	// GridTypePresent marks the grid type line.
	GridTypePresent
)

// NumParams is the number of defined flags (printed width of the bitmap).
const NumParams = 9

// Required is the set of flags every puzzle description must carry.
const Required = VertexCountPresent | EdgeCountPresent | FaceCountPresent |
	VertexListPresent | EdgeListPresent | FaceListPresent

// Has reports whether every bit of flag is set.
func (p Params) Has(flag Params) bool { return p&flag == flag }

// With returns p with flag set.
func (p Params) With(flag Params) Params { return p | flag }

// Without returns p with flag cleared.
func (p Params) Without(flag Params) Params { return p &^ flag }

// Point is a planar position.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// String renders the point for logs and test failures.
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Vertex is a corner of the hexagonal tiling.
type Vertex struct {
	// ID equals the vertex index in Puzzle.Vertices.
	ID int

	// Pos is meaningful only when Placed is true.
	Pos Point

	// Placed reports whether Pos has been set, by the loader or the generator.
	Placed bool

	// EdgeIDs lists incident edges (2 on the rim, 3 inside).
	EdgeIDs []int
}

// Edge connects two vertices and separates two faces.
type Edge struct {
	// ID equals the edge index in Puzzle.Edges.
	ID int

	// Vertices holds the two endpoint vertex ids.
	Vertices [2]int

	// Faces holds the two incident face ids; either may be OuterFace.
	Faces [2]int

	// Solution reports membership in the solution loop.
	Solution bool
}

// Face is one hexagonal cell.
type Face struct {
	// ID equals the face index in Puzzle.Faces.
	ID int

	// Clue is the required number of solution edges, or NoClue.
	Clue int

	// EdgeIDs lists the bounding edges (HexSides of them).
	EdgeIDs []int
}

// HasClue reports whether the face carries a clue.
func (f *Face) HasClue() bool { return f.Clue != NoClue }

// Puzzle aggregates the parameter bitmask and the three catalogs.
// Slices are indexed by id: Vertices[i].ID == i, and likewise for edges and faces.
type Puzzle struct {
	Params   Params
	GridType int

	Vertices []Vertex
	Edges    []Edge
	Faces    []Face
}

// New allocates a puzzle with nv vertices, ne edges and nf faces. Ids are
// assigned densely, faces start with NoClue, vertices start unplaced and
// Params carries the Required flags. Negative sizes are treated as zero.
// Complexity: O(nv+ne+nf).
func New(nv, ne, nf int) *Puzzle {
	nv, ne, nf = max(nv, 0), max(ne, 0), max(nf, 0)
	p := &Puzzle{
		Params:   Required,
		Vertices: make([]Vertex, nv),
		Edges:    make([]Edge, ne),
		Faces:    make([]Face, nf),
	}
	for i := range p.Vertices {
		p.Vertices[i].ID = i
	}
	for i := range p.Edges {
		p.Edges[i].ID = i
		p.Edges[i].Faces = [2]int{OuterFace, OuterFace}
	}
	for i := range p.Faces {
		p.Faces[i].ID = i
		p.Faces[i].Clue = NoClue
	}

	return p
}
