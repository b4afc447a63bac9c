package render_test

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-dobrzanski/Slitherlink/builder"
	"github.com/j-dobrzanski/Slitherlink/puzzle"
	"github.com/j-dobrzanski/Slitherlink/render"
)

func solvedWheel(t *testing.T, k int) *puzzle.Puzzle {
	t.Helper()
	p, err := builder.BuildPuzzle([]builder.BuilderOption{builder.WithSeed(9)},
		builder.HexWheel(k), builder.RandomLoop(), builder.Clues())
	require.NoError(t, err)
	return p
}

func TestStyle_Defaults(t *testing.T) {
	s := render.DefaultStyle()
	require.NoError(t, s.Validate())
	assert.Equal(t, render.DefaultScale, s.Scale)
	assert.False(t, s.ShowIDs)
}

func TestLoadStyle(t *testing.T) {
	s, err := render.LoadStyle(filepath.Join("testdata", "style.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8.0, s.Scale)
	assert.Equal(t, 1024, s.Width)
	assert.Equal(t, 768, s.Height)
	assert.Equal(t, "#c62828", s.SolutionColor)
	assert.True(t, s.ShowIDs)
	assert.False(t, s.ShowClues)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, render.DefaultStyle().EdgeColor, s.EdgeColor)

	_, err = render.LoadStyle(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestParseStyle_Errors(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want error
	}{
		"named color":   {"edge_color: grey", render.ErrBadColor},
		"short hex":     {"background: '#ff'", render.ErrBadColor},
		"bad hex digit": {"clue_color: '#gg0000'", render.ErrBadColor},
		"zero width":    {"width: 0", render.ErrBadStyle},
		"neg scale":     {"scale: -1", render.ErrBadStyle},
		"neg padding":   {"padding: -0.5", render.ErrBadStyle},
		"huge width":    {"width: 200000", render.ErrBadStyle},
		"huge height":   {"height: 2049", render.ErrBadStyle},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := render.ParseStyle([]byte(tc.yaml))
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	s, err := render.ParseStyle([]byte("vertex_color: '#0a0'"))
	require.NoError(t, err)
	assert.Equal(t, "#0a0", s.VertexColor)
}

func TestNewScene(t *testing.T) {
	p := solvedWheel(t, 2)
	s := render.DefaultStyle()
	sc, err := render.NewScene(p, s)
	require.NoError(t, err)

	require.Len(t, sc.Segments, p.NumEdges())
	require.Len(t, sc.Vertices, p.NumVertices())
	assert.InDelta(t, 5.0, sc.Vertices[0].Y, 1e-9, "positions scaled by Style.Scale")
	assert.InDelta(t, 12.5, sc.Max.Y, 1e-9)
	assert.InDelta(t, -12.5, sc.Min.Y, 1e-9)

	solution := 0
	for _, seg := range sc.Segments {
		if seg.Solution {
			solution++
		}
	}
	assert.Equal(t, len(p.SolutionEdges()), solution)

	// Clues only: one label per clued face.
	assert.Len(t, sc.Labels, p.NumFaces())
	for _, l := range sc.Labels {
		assert.Equal(t, render.Clue, l.Kind)
	}

	s.ShowIDs = true
	sc, err = render.NewScene(p, s)
	require.NoError(t, err)
	assert.Len(t, sc.Labels, p.NumVertices()+p.NumEdges()+2*p.NumFaces())
}

func TestNewScene_FaceIDsOnlyForCluedFaces(t *testing.T) {
	p := solvedWheel(t, 2)
	p.Faces[0].Clue = puzzle.NoClue
	s := render.DefaultStyle()
	s.ShowIDs, s.ShowClues = true, false
	sc, err := render.NewScene(p, s)
	require.NoError(t, err)

	faces := 0
	for _, l := range sc.Labels {
		if l.Kind == render.FaceID {
			faces++
			assert.NotEqual(t, "0", l.Text)
		}
	}
	assert.Equal(t, p.NumFaces()-1, faces)
}

func TestNewScene_Unplaced(t *testing.T) {
	_, err := render.NewScene(puzzle.New(6, 0, 0), render.DefaultStyle())
	assert.True(t, errors.Is(err, puzzle.ErrUnplaced))
}

func TestWriteSVG(t *testing.T) {
	p := solvedWheel(t, 3)
	sc, err := render.NewScene(p, render.DefaultStyle())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, sc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, p.NumEdges(), strings.Count(out, "<line "))
	assert.Equal(t, p.NumEdges()-len(p.SolutionEdges()), strings.Count(out, "stroke-dasharray"))
	assert.Equal(t, p.NumVertices(), strings.Count(out, "<circle "))
	assert.Equal(t, p.NumFaces(), strings.Count(out, "<text "))
	assert.Contains(t, out, "stroke='#008000'")
	assert.NotContains(t, out, "'-0'")
}

func TestRasterize_Hexagon(t *testing.T) {
	p, err := builder.BuildPuzzle([]builder.BuilderOption{builder.WithSeed(1)},
		builder.HexWheel(1), builder.RandomLoop())
	require.NoError(t, err)
	s := render.DefaultStyle()
	s.Width, s.Height = 200, 200
	sc, err := render.NewScene(p, s)
	require.NoError(t, err)

	img, err := render.Rasterize(sc)
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())

	centre := img.RGBAAt(100, 100)
	assert.Greater(t, int(centre.R), 240, "hexagon interior is background")

	top := img.RGBAAt(100, 28)
	assert.Less(t, int(top.R), 80, "top vertex is drawn black")

	// Midpoint of the first solution edge, (0,5)→(4.33,2.5) in drawing units.
	edge := img.RGBAAt(131, 46)
	assert.Greater(t, int(edge.G), 90)
	assert.Less(t, int(edge.R), 80)
}

func TestWritePNG(t *testing.T) {
	p := solvedWheel(t, 2)
	s := render.DefaultStyle()
	s.Width, s.Height, s.ShowIDs = 320, 240, true
	sc, err := render.NewScene(p, s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, sc))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}
