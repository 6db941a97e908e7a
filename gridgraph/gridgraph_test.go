package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 0}, {0, 1}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	grid[0][0] = 0
	v, ok := gg.Value(geom.Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, geom.NewRect2D(geom.Pt(0, 0), geom.Pt(1, 1)), gg.Bounds)
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width())
	assert.Equal(t, 2, gg.Height())

	for _, p := range []geom.Point2D{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []geom.Point2D{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(p), "InBounds(%v)", p)
		_, ok := gg.Value(p)
		assert.False(t, ok)
		assert.False(t, gg.IsLand(p))
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0, 0}, {0, 0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)
	for p := range gg.Bounds.Points() {
		assert.Equal(t, p, gg.Coordinate(gg.Index(p)))
	}
	assert.Equal(t, 4, gg.Index(geom.Pt(1, 1)))
}

func TestNeighbors(t *testing.T) {
	grid := [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}

	g4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point2D{{1, 0}, {0, 1}}, g4.Neighbors(geom.Pt(0, 0)))
	assert.Len(t, g4.Neighbors(geom.Pt(1, 1)), 4)
	assert.Len(t, g4.NeighborOffsets(), 4)

	g8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point2D{{1, 0}, {1, 1}, {0, 1}}, g8.Neighbors(geom.Pt(0, 0)))
	assert.Len(t, g8.Neighbors(geom.Pt(1, 1)), 8)
}

func TestLandThreshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 5
	gg, err := gridgraph.NewGridGraph([][]int{{4, 5, 9}}, opts)
	require.NoError(t, err)
	assert.False(t, gg.IsLand(geom.Pt(0, 0)))
	assert.True(t, gg.IsLand(geom.Pt(1, 0)))
	assert.True(t, gg.IsLand(geom.Pt(2, 0)))
}

func TestRender(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 0}, {0, 2, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	out := gg.Render(func(p geom.Point2D, v int) rune {
		if v >= gg.LandThreshold {
			return '#'
		}
		return '.'
	})
	assert.Equal(t, "#..\n.##\n", out)
}
