// SPDX-License-Identifier: MIT
// Package: slitherlink/render
//
// style.go — YAML-configurable drawing style.
//
// Units: Scale maps lattice units (edge length 1) to drawing units. All other
// lengths are drawing units; WritePNG fits the drawing into Width×Height
// pixels, WriteSVG uses drawing units as its viewBox.

package render

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style controls the look of a rendered puzzle.
type Style struct {
	Scale   float64 `yaml:"scale"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`

	Background    string  `yaml:"background"`
	SolutionColor string  `yaml:"solution_color"`
	EdgeColor     string  `yaml:"edge_color"`
	VertexColor   string  `yaml:"vertex_color"`
	VertexIDColor string  `yaml:"vertex_id_color"`
	EdgeIDColor   string  `yaml:"edge_id_color"`
	FaceIDColor   string  `yaml:"face_id_color"`
	ClueColor     string  `yaml:"clue_color"`
	SolutionWidth float64 `yaml:"solution_width"`
	EdgeWidth     float64 `yaml:"edge_width"`
	DashLength    float64 `yaml:"dash_length"`
	VertexRadius  float64 `yaml:"vertex_radius"`
	FontSize      float64 `yaml:"font_size"`
	ShowIDs       bool    `yaml:"show_ids"`
	ShowClues     bool    `yaml:"show_clues"`
}

// Default style values.
const (
	DefaultScale  = 5.0
	DefaultWidth  = 800
	DefaultHeight = 800
)

// MaxSide bounds Width and Height; Rasterize allocates Supersample² times
// that area.
const MaxSide = 2048

// DefaultStyle returns the stock style: green solution, dotted grey edges,
// black vertices, blue edge ids and red face ids.
func DefaultStyle() Style {
	return Style{
		Scale:         DefaultScale,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Padding:       2,
		Background:    "#ffffff",
		SolutionColor: "#008000",
		EdgeColor:     "#808080",
		VertexColor:   "#000000",
		VertexIDColor: "#000000",
		EdgeIDColor:   "#0000ff",
		FaceIDColor:   "#ff0000",
		ClueColor:     "#333333",
		SolutionWidth: 0.3,
		EdgeWidth:     0.12,
		DashLength:    0.3,
		VertexRadius:  0.25,
		FontSize:      1,
		ShowClues:     true,
	}
}

// LoadStyle reads a YAML style file and overlays it on DefaultStyle: keys
// missing from the file keep their default values.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("LoadStyle: %w", err)
	}

	return ParseStyle(data)
}

// ParseStyle decodes YAML style data over DefaultStyle and validates it.
func ParseStyle(data []byte) (Style, error) {
	s := DefaultStyle()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("ParseStyle: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}

	return s, nil
}

// Validate checks every color and size of the style.
func (s Style) Validate() error {
	if _, err := s.palette(); err != nil {
		return err
	}
	if s.Scale <= 0 || s.Width <= 0 || s.Height <= 0 || s.FontSize <= 0 {
		return fmt.Errorf("Validate: scale %g, %dx%d px, font %g: %w", s.Scale, s.Width, s.Height, s.FontSize, ErrBadStyle)
	}
	if s.Width > MaxSide || s.Height > MaxSide {
		return fmt.Errorf("Validate: %dx%d px exceeds %d per side: %w", s.Width, s.Height, MaxSide, ErrBadStyle)
	}
	if s.Padding < 0 || s.SolutionWidth < 0 || s.EdgeWidth < 0 || s.DashLength < 0 || s.VertexRadius < 0 {
		return fmt.Errorf("Validate: negative length: %w", ErrBadStyle)
	}

	return nil
}

// palette holds the parsed colors of a style.
type palette struct {
	background, solution, edge, vertex color.RGBA
	vertexID, edgeID, faceID, clue     color.RGBA
}

func (s Style) palette() (palette, error) {
	var p palette
	for _, c := range []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", s.Background, &p.background},
		{"solution_color", s.SolutionColor, &p.solution},
		{"edge_color", s.EdgeColor, &p.edge},
		{"vertex_color", s.VertexColor, &p.vertex},
		{"vertex_id_color", s.VertexIDColor, &p.vertexID},
		{"edge_id_color", s.EdgeIDColor, &p.edgeID},
		{"face_id_color", s.FaceIDColor, &p.faceID},
		{"clue_color", s.ClueColor, &p.clue},
	} {
		rgba, err := parseHexColor(c.hex)
		if err != nil {
			return palette{}, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = rgba
	}

	return p, nil
}

// parseHexColor accepts #rgb and #rrggbb.
func parseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
