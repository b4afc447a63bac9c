// SPDX-License-Identifier: MIT
// Package: slitherlink/render
//
// svg.go — SVG output. Drawing units become the viewBox; the y axis is
// flipped so the scene's +y points up on screen.

package render

import (
	"bufio"
	"fmt"
	"html"
	"image/color"
	"io"
)

// WriteSVG writes sc as a standalone SVG document sized Style.Width×Height.
func WriteSVG(w io.Writer, sc *Scene) error {
	pal, err := sc.Style.palette()
	if err != nil {
		return fmt.Errorf("WriteSVG: %w", err)
	}
	st := sc.Style
	vw, vh := sc.Size()
	x0, y0 := sc.Min.X-st.Padding, flip(sc.Max.Y+st.Padding)

	bw := bufio.NewWriter(w)
	printf := func(format string, a ...any) { fmt.Fprintf(bw, format, a...) }

	printf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="%g %g %g %g">
`, st.Width, st.Height, x0, y0, vw, vh)
	printf("<rect x='%g' y='%g' width='%g' height='%g' fill='%s'/>\n", x0, y0, vw, vh, hexOf(pal.background))

	printf("<g stroke-linecap='round'>\n")
	for _, s := range sc.Segments {
		if s.Solution {
			printf("<line x1='%g' y1='%g' x2='%g' y2='%g' stroke='%s' stroke-width='%g'/>\n",
				s.From.X, flip(s.From.Y), s.To.X, flip(s.To.Y), hexOf(pal.solution), st.SolutionWidth)
			continue
		}
		printf("<line x1='%g' y1='%g' x2='%g' y2='%g' stroke='%s' stroke-width='%g' stroke-dasharray='%g %g'/>\n",
			s.From.X, flip(s.From.Y), s.To.X, flip(s.To.Y), hexOf(pal.edge), st.EdgeWidth, st.EdgeWidth, st.DashLength)
	}
	printf("</g>\n")

	printf("<g fill='%s'>\n", hexOf(pal.vertex))
	for _, v := range sc.Vertices {
		printf("<circle cx='%g' cy='%g' r='%g'/>\n", v.X, flip(v.Y), st.VertexRadius)
	}
	printf("</g>\n")

	if len(sc.Labels) > 0 {
		printf("<g font-family='sans-serif' font-size='%g' text-anchor='middle' dominant-baseline='central'>\n", st.FontSize)
		for _, l := range sc.Labels {
			printf("<text x='%g' y='%g' fill='%s'>%s</text>\n", l.At.X, flip(l.At.Y), hexOf(pal.label(l.Kind)), html.EscapeString(l.Text))
		}
		printf("</g>\n")
	}
	printf("</svg>\n")

	return bw.Flush()
}

func (p palette) label(k LabelKind) color.RGBA {
	switch k {
	case VertexID:
		return p.vertexID
	case EdgeID:
		return p.edgeID
	case FaceID:
		return p.faceID
	default:
		return p.clue
	}
}

func hexOf(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// flip maps scene y to SVG y without producing negative zero.
func flip(y float64) float64 { return 0 - y }
