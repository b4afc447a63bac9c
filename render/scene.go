// SPDX-License-Identifier: MIT
// Package: slitherlink/render
//
// scene.go — puzzle → renderer-neutral primitives in drawing units.

package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/j-dobrzanski/Slitherlink/hexwheel"
	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// LabelKind tells writers which color a label takes.
type LabelKind int

const (
	VertexID LabelKind = iota
	EdgeID
	FaceID
	Clue
)

// Segment is one drawn edge.
type Segment struct {
	Edge     int
	From, To puzzle.Point
	Solution bool
}

// Label is a piece of text centred on At.
type Label struct {
	Kind LabelKind
	Text string
	At   puzzle.Point
}

// Scene is a puzzle laid out in drawing units (+y up).
type Scene struct {
	Style    Style
	Segments []Segment
	Vertices []puzzle.Point
	Labels   []Label
	// Min and Max bound every vertex, without padding.
	Min, Max puzzle.Point
}

// NewScene lays out p, which must be fully positioned, with style s.
// Positions are multiplied by s.Scale.
func NewScene(p *puzzle.Puzzle, s Style) (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("NewScene: %w", err)
	}
	pts, err := p.Positions()
	if err != nil {
		return nil, fmt.Errorf("NewScene: %w", err)
	}
	pts = hexwheel.Scale(pts, s.Scale)

	sc := &Scene{
		Style:    s,
		Segments: make([]Segment, 0, p.NumEdges()),
		Vertices: pts,
		Min:      puzzle.Point{X: math.Inf(1), Y: math.Inf(1)},
		Max:      puzzle.Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, pt := range pts {
		sc.Min = puzzle.Point{X: math.Min(sc.Min.X, pt.X), Y: math.Min(sc.Min.Y, pt.Y)}
		sc.Max = puzzle.Point{X: math.Max(sc.Max.X, pt.X), Y: math.Max(sc.Max.Y, pt.Y)}
	}
	if len(pts) == 0 {
		sc.Min, sc.Max = puzzle.Point{}, puzzle.Point{}
	}

	for _, e := range p.Edges {
		a, b := e.Vertices[0], e.Vertices[1]
		if a < 0 || a >= len(pts) || b < 0 || b >= len(pts) {
			return nil, fmt.Errorf("NewScene: edge %d: %w", e.ID, puzzle.ErrDanglingReference)
		}
		sc.Segments = append(sc.Segments, Segment{Edge: e.ID, From: pts[a], To: pts[b], Solution: e.Solution})
	}

	if s.ShowIDs {
		for i, pt := range pts {
			sc.Labels = append(sc.Labels, Label{Kind: VertexID, Text: strconv.Itoa(i), At: pt})
		}
		for _, seg := range sc.Segments {
			sc.Labels = append(sc.Labels, Label{Kind: EdgeID, Text: strconv.Itoa(seg.Edge), At: seg.From.Add(seg.To).Mul(0.5)})
		}
	}
	if s.ShowIDs || s.ShowClues {
		for _, f := range p.Faces {
			if !f.HasClue() {
				continue
			}
			c, err := p.FaceCentroid(f.ID)
			if err != nil {
				return nil, fmt.Errorf("NewScene: %w", err)
			}
			c = c.Mul(s.Scale)
			if s.ShowClues {
				sc.Labels = append(sc.Labels, Label{Kind: Clue, Text: strconv.Itoa(f.Clue), At: c})
			}
			if s.ShowIDs {
				at := c
				if s.ShowClues {
					// Keep the id clear of the clue.
					at.Y -= s.FontSize
				}
				sc.Labels = append(sc.Labels, Label{Kind: FaceID, Text: strconv.Itoa(f.ID), At: at})
			}
		}
	}

	return sc, nil
}

// Size returns the padded drawing extent.
func (sc *Scene) Size() (w, h float64) {
	pad := 2 * sc.Style.Padding
	return sc.Max.X - sc.Min.X + pad, sc.Max.Y - sc.Min.Y + pad
}
