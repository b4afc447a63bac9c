package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-dobrzanski/Slitherlink/builder"
	"github.com/j-dobrzanski/Slitherlink/hexwheel"
	"github.com/j-dobrzanski/Slitherlink/puzzle"
	"github.com/j-dobrzanski/Slitherlink/puzzlefile"
)

func TestRun_Usage(t *testing.T) {
	assert.True(t, errors.Is(run(nil, &bytes.Buffer{}), errUsage))
	assert.True(t, errors.Is(run([]string{"solve"}, &bytes.Buffer{}), errUsage))
}

func TestRun_Coords(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"coords", "-vertices", "24", "-scale", "5"}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, "0 0 5", lines[0])
	assert.Equal(t, "6 0 10", lines[6])

	err := run([]string{"coords", "-vertices", "37"}, &out)
	assert.True(t, errors.Is(err, hexwheel.ErrInvalidTopology))
}

func TestRun_GenerateAndRender(t *testing.T) {
	t.Setenv("SLITHERHEX_CONFIG", "")
	dir := t.TempDir()
	puzzlePath := filepath.Join(dir, "p.txt")

	require.NoError(t, run([]string{"generate", "-layers", "3", "-seed", "4", "-o", puzzlePath}, &bytes.Buffer{}))
	p, err := puzzlefile.ReadFile(puzzlePath)
	require.NoError(t, err)
	assert.Equal(t, 54, p.NumVertices())
	assert.True(t, p.Params.Has(puzzle.SolvedEdgePresent))
	assert.NotEmpty(t, p.SolutionEdges())

	svgPath := filepath.Join(dir, "p.svg")
	require.NoError(t, run([]string{"render", "-in", puzzlePath, "-o", svgPath, "-ids"}, nil))
	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	pngPath := filepath.Join(dir, "p.png")
	require.NoError(t, run([]string{"render", "-in", puzzlePath, "-o", pngPath}, nil))
	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	gifPath := filepath.Join(dir, "p.gif")
	err = run([]string{"render", "-in", puzzlePath, "-o", gifPath}, nil)
	assert.True(t, errors.Is(err, errUsage))
	assert.NoFileExists(t, gifPath)
}

var svgLine = regexp.MustCompile(`<line x1='([^']+)' y1='([^']+)' x2='([^']+)' y2='([^']+)'`)

func TestRun_RenderGeneratesCoordinates(t *testing.T) {
	t.Setenv("SLITHERHEX_CONFIG", "")
	dir := t.TempDir()

	p, err := builder.BuildPuzzle(nil, builder.HexWheel(4))
	require.NoError(t, err)
	p.Params = p.Params.Without(puzzle.CoordsPresent)
	puzzlePath := filepath.Join(dir, "blank.txt")
	require.NoError(t, puzzlefile.WriteFile(puzzlePath, p))

	svgPath := filepath.Join(dir, "blank.svg")
	require.NoError(t, run([]string{"render", "-in", puzzlePath, "-o", svgPath}, nil))
	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)

	// Default scale 5: every unit lattice edge is 5 drawing units long.
	lines := svgLine.FindAllStringSubmatch(string(svg), -1)
	require.Len(t, lines, p.NumEdges())
	for _, m := range lines {
		var c [4]float64
		for i := range c {
			c[i], err = strconv.ParseFloat(m[i+1], 64)
			require.NoError(t, err)
		}
		assert.InDelta(t, 5.0, math.Hypot(c[2]-c[0], c[3]-c[1]), 1e-9, "%s", m[0])
	}
}

func TestRun_GenerateBlankToStdout(t *testing.T) {
	t.Setenv("SLITHERHEX_CONFIG", "")
	var out bytes.Buffer
	require.NoError(t, run([]string{"generate", "-layers", "2", "-blank"}, &out))

	p, err := puzzlefile.Read(&out)
	require.NoError(t, err)
	assert.Equal(t, 30, p.NumEdges())
	assert.Empty(t, p.SolutionEdges())
	assert.True(t, p.Placed(), "blank wheel carries coordinates")
}
