package hexwheel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/j-dobrzanski/Slitherlink/hexwheel"
	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

const eps = 1e-9

// GenerateSuite checks the geometric guarantees of Generate for wheels of
// one to six layers.
type GenerateSuite struct {
	suite.Suite
	maxLayers int
	wheels    map[int][]puzzle.Point
}

func (s *GenerateSuite) SetupSuite() {
	s.maxLayers = 6
	s.wheels = make(map[int][]puzzle.Point, s.maxLayers)
	for k := 1; k <= s.maxLayers; k++ {
		pts, err := hexwheel.Generate(6 * k * k)
		require.NoError(s.T(), err, "k=%d", k)
		s.wheels[k] = pts
	}
}

// TestCountAndDistinct: exactly V points, pairwise distinct.
func (s *GenerateSuite) TestCountAndDistinct() {
	for k, pts := range s.wheels {
		require.Len(s.T(), pts, 6*k*k)
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				require.Greater(s.T(), dist(pts[i], pts[j]), 0.5,
					"k=%d: points %d and %d coincide", k, i, j)
			}
		}
	}
}

// TestUnitLattice: nearest neighbours sit at distance 1 and give the edge
// count of a hexagonal wheel, 9k²−3k, with every degree 2 or 3.
func (s *GenerateSuite) TestUnitLattice() {
	for k, pts := range s.wheels {
		edges := 0
		deg := make([]int, len(pts))
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				d := dist(pts[i], pts[j])
				require.GreaterOrEqual(s.T(), d, 1-1e-6, "k=%d: %d-%d too close", k, i, j)
				if math.Abs(d-1) < 1e-6 {
					edges++
					deg[i]++
					deg[j]++
				}
			}
		}
		assert.Equal(s.T(), 9*k*k-3*k, edges, "k=%d", k)
		for i, d := range deg {
			assert.Contains(s.T(), []int{2, 3}, d, "k=%d vertex %d", k, i)
		}
	}
}

// TestUnitHexagon: k=1 is the regular hexagon of circumradius 1, apex up,
// proceeding clockwise.
func (s *GenerateSuite) TestUnitHexagon() {
	pts := s.wheels[1]
	for w, p := range pts {
		angle := float64(w) * math.Pi / 3
		assert.InDelta(s.T(), math.Sin(angle), p.X, eps, "vertex %d x", w)
		assert.InDelta(s.T(), math.Cos(angle), p.Y, eps, "vertex %d y", w)
		assert.InDelta(s.T(), 1.0, math.Hypot(p.X, p.Y), eps)
	}
}

// TestRotationalSymmetry: turning a wedge copy by −60° lands on the next copy.
func (s *GenerateSuite) TestRotationalSymmetry() {
	sin, cos := math.Sincos(-math.Pi / 3)
	for k, pts := range s.wheels {
		for layer := 1; layer <= k; layer++ {
			for w := 0; w < hexwheel.Wedges; w++ {
				for j := 0; j < hexwheel.WedgeSize(layer); j++ {
					from, err := hexwheel.SlotIndex(k, hexwheel.Slot{Layer: layer, Wedge: w, Offset: j})
					require.NoError(s.T(), err)
					to, err := hexwheel.SlotIndex(k, hexwheel.Slot{Layer: layer, Wedge: (w + 1) % hexwheel.Wedges, Offset: j})
					require.NoError(s.T(), err)
					p := pts[from]
					rx, ry := p.X*cos-p.Y*sin, p.X*sin+p.Y*cos
					assert.InDelta(s.T(), pts[to].X, rx, eps, "k=%d L=%d w=%d j=%d", k, layer, w, j)
					assert.InDelta(s.T(), pts[to].Y, ry, eps, "k=%d L=%d w=%d j=%d", k, layer, w, j)
				}
			}
		}
	}
}

// TestLayersNested: every point of layer L+1 is farther from the origin than
// every point of layer L.
func (s *GenerateSuite) TestLayersNested() {
	pts := s.wheels[s.maxLayers]
	prevMax := 0.0
	for layer := 1; layer <= s.maxLayers; layer++ {
		lo, hi := math.Inf(1), 0.0
		start := hexwheel.LayerStart(layer)
		for _, p := range pts[start : start+hexwheel.LayerSize(layer)] {
			r := math.Hypot(p.X, p.Y)
			lo, hi = math.Min(lo, r), math.Max(hi, r)
		}
		require.Greater(s.T(), lo, prevMax, "layer %d not outside layer %d", layer, layer-1)
		prevMax = hi
	}
}

// TestInnerLayersShared: the first layers of a larger wheel equal the smaller wheel.
func (s *GenerateSuite) TestInnerLayersShared() {
	small, big := s.wheels[3], s.wheels[5]
	require.Equal(s.T(), small, big[:len(small)])
}

// TestDeterministic: two runs agree bit for bit.
func (s *GenerateSuite) TestDeterministic() {
	again, err := hexwheel.Generate(6 * 16)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.wheels[4], again)
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}

func TestGenerate_InvalidCounts(t *testing.T) {
	for _, v := range []int{10, 37, 0, -6, 12, 6*4 + 6} {
		pts, err := hexwheel.Generate(v)
		require.Error(t, err, "V=%d", v)
		assert.True(t, errors.Is(err, hexwheel.ErrInvalidTopology), "V=%d", v)
		assert.Nil(t, pts)
	}
}

func TestGenerate_TwoLayers(t *testing.T) {
	want := []puzzle.Point{
		{X: 0, Y: 1}, {X: 0.866, Y: 0.5}, {X: 0.866, Y: -0.5}, {X: 0, Y: -1}, {X: -0.866, Y: -0.5}, {X: -0.866, Y: 0.5},
		{X: 0, Y: 2}, {X: 0.866, Y: 2.5}, {X: 1.7321, Y: 2},
		{X: 1.7321, Y: 1}, {X: 2.5981, Y: 0.5}, {X: 2.5981, Y: -0.5},
		{X: 1.7321, Y: -1}, {X: 1.7321, Y: -2}, {X: 0.866, Y: -2.5},
		{X: 0, Y: -2}, {X: -0.866, Y: -2.5}, {X: -1.7321, Y: -2},
		{X: -1.7321, Y: -1}, {X: -2.5981, Y: -0.5}, {X: -2.5981, Y: 0.5},
		{X: -1.7321, Y: 1}, {X: -1.7321, Y: 2}, {X: -0.866, Y: 2.5},
	}
	pts, err := hexwheel.Generate(24)
	require.NoError(t, err)
	require.Len(t, pts, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, pts[i].X, 1e-4, "vertex %d x", i)
		assert.InDelta(t, want[i].Y, pts[i].Y, 1e-4, "vertex %d y", i)
	}

	// Layer-2 apexes: radius 2, 60° apart, clockwise from +y.
	for w := 0; w < hexwheel.Wedges; w++ {
		p := pts[6+3*w]
		angle := float64(w) * math.Pi / 3
		assert.InDelta(t, 2*math.Sin(angle), p.X, eps, "apex %d", w)
		assert.InDelta(t, 2*math.Cos(angle), p.Y, eps, "apex %d", w)
	}
}

func TestScale(t *testing.T) {
	pts, err := hexwheel.Generate(54)
	require.NoError(t, err)

	scaled := hexwheel.Scale(pts, 5)
	require.Len(t, scaled, len(pts))
	for i := range pts {
		assert.InDelta(t, 5*pts[i].X, scaled[i].X, eps)
		assert.InDelta(t, 5*pts[i].Y, scaled[i].Y, eps)
	}
	assert.InDelta(t, 1.0, pts[0].Y, eps, "Scale must not touch its input")

	// Scaling composes multiplicatively.
	twice := hexwheel.Scale(hexwheel.Scale(pts, 2), 3)
	hexwheel.ScaleInPlace(pts, 6)
	for i := range pts {
		assert.InDelta(t, pts[i].X, twice[i].X, eps)
		assert.InDelta(t, pts[i].Y, twice[i].Y, eps)
	}
}

func dist(a, b puzzle.Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
