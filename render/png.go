// SPDX-License-Identifier: MIT
// Package: slitherlink/render
//
// png.go — raster output with 4× supersampling.
//
// The scene is drawn at Supersample times the target size and reduced with
// CatmullRom interpolation, which smooths line and dot edges without an
// anti-aliasing rasterizer. Labels use the embedded Go Regular font.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// Supersample is the oversampling factor of Rasterize.
const Supersample = 4

// WritePNG rasterizes sc at Style.Width×Height pixels and encodes it as PNG.
func WritePNG(w io.Writer, sc *Scene) error {
	img, err := Rasterize(sc)
	if err != nil {
		return err
	}
	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}

	return nil
}

// Rasterize draws sc into a Style.Width×Height image, fitting the padded
// drawing extent and centring it.
func Rasterize(sc *Scene) (*image.RGBA, error) {
	pal, err := sc.Style.palette()
	if err != nil {
		return nil, fmt.Errorf("Rasterize: %w", err)
	}
	st := sc.Style
	big := image.NewRGBA(image.Rect(0, 0, st.Width*Supersample, st.Height*Supersample))
	draw.Draw(big, big.Bounds(), image.NewUniform(pal.background), image.Point{}, draw.Src)

	c := newCanvas(big, sc)
	for _, s := range sc.Segments {
		if s.Solution {
			c.line(s.From, s.To, st.SolutionWidth, 0, pal.solution)
		} else {
			c.line(s.From, s.To, st.EdgeWidth, st.DashLength, pal.edge)
		}
	}
	for _, v := range sc.Vertices {
		c.dot(v, st.VertexRadius, pal.vertex)
	}
	if len(sc.Labels) > 0 {
		face, err := labelFace(st.FontSize * c.k)
		if err != nil {
			return nil, fmt.Errorf("Rasterize: %w", err)
		}
		defer face.Close()
		for _, l := range sc.Labels {
			c.text(face, l.At, l.Text, pal.label(l.Kind))
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, st.Width, st.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)

	return out, nil
}

// canvas maps drawing units onto pixels: uniform scale k, +y flipped.
type canvas struct {
	img       *image.RGBA
	k         float64
	ox, oy    float64
	left, top float64
}

func newCanvas(img *image.RGBA, sc *Scene) *canvas {
	vw, vh := sc.Size()
	b := img.Bounds()
	pw, ph := float64(b.Dx()), float64(b.Dy())
	k := math.Min(pw/math.Max(vw, 1e-9), ph/math.Max(vh, 1e-9))

	return &canvas{
		img:  img,
		k:    k,
		ox:   (pw - vw*k) / 2,
		oy:   (ph - vh*k) / 2,
		left: sc.Min.X - sc.Style.Padding,
		top:  sc.Max.Y + sc.Style.Padding,
	}
}

func (c *canvas) px(p puzzle.Point) (x, y float64) {
	return c.ox + (p.X-c.left)*c.k, c.oy + (c.top-p.Y)*c.k
}

// line paints a capsule of the given width from a to b. With gap > 0 the
// stroke becomes round dots of diameter width spaced gap apart.
func (c *canvas) line(a, b puzzle.Point, width, gap float64, col color.RGBA) {
	x1, y1 := c.px(a)
	x2, y2 := c.px(b)
	hw := width * c.k / 2
	period := (width + gap) * c.k
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)

	bounds := image.Rect(
		int(math.Floor(math.Min(x1, x2)-hw)), int(math.Floor(math.Min(y1, y2)-hw)),
		int(math.Ceil(math.Max(x1, x2)+hw))+1, int(math.Ceil(math.Max(y1, y2)+hw))+1,
	).Intersect(c.img.Bounds())

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			fx, fy := float64(px)+0.5, float64(py)+0.5
			t := 0.0
			if length > 0 {
				t = math.Max(0, math.Min(length, ((fx-x1)*dx+(fy-y1)*dy)/length))
			}
			if gap > 0 && period > 0 {
				// Snap to the centre of the nearest dot.
				t = math.Min(length, math.Round(t/period)*period)
			}
			cx, cy := x1, y1
			if length > 0 {
				cx, cy = x1+dx*t/length, y1+dy*t/length
			}
			if math.Hypot(fx-cx, fy-cy) <= hw {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

func (c *canvas) dot(at puzzle.Point, radius float64, col color.RGBA) {
	cx, cy := c.px(at)
	r := radius * c.k
	bounds := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r))+1, int(math.Ceil(cy+r))+1,
	).Intersect(c.img.Bounds())
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			if math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy) <= r {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

// text draws s centred on at.
func (c *canvas) text(face font.Face, at puzzle.Point, s string, col color.RGBA) {
	cx, cy := c.px(at)
	width := font.MeasureString(face, s)
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(cx*64) - width/2,
			Y: fixed.Int26_6(cy*64) + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(s)
}

func labelFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    math.Max(size, 1),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
