package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// TestShortestPath_Maze follows the only corridor of a small maze.
//
//	1 1 1 1
//	0 0 0 1
//	1 1 1 1
//	1 0 0 0
func TestShortestPath_Maze(t *testing.T) {
	grid := [][]int{
		{1, 1, 1, 1},
		{0, 0, 0, 1},
		{1, 1, 1, 1},
		{1, 0, 0, 0},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	path, err := gg.ShortestPath(geom.Pt(0, 0), geom.Pt(0, 3))
	require.NoError(t, err)
	require.Len(t, path, 10)
	assert.Equal(t, geom.Pt(0, 0), path[0])
	assert.Equal(t, geom.Pt(0, 3), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Distance(path[i]))
		assert.True(t, gg.IsLand(path[i]))
	}
}

// TestShortestPath_Diagonal uses Conn8 to cut corners.
func TestShortestPath_Diagonal(t *testing.T) {
	grid := [][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	path, err := gg.ShortestPath(geom.Pt(0, 0), geom.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point2D{{0, 0}, {1, 1}, {2, 2}}, path)

	same, err := gg.ShortestPath(geom.Pt(1, 1), geom.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point2D{{1, 1}}, same)
}

func TestShortestPath_Errors(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	_, err = gg.ShortestPath(geom.Pt(0, 0), geom.Pt(2, 0))
	assert.ErrorIs(t, err, gridgraph.ErrNoPath)
	_, err = gg.ShortestPath(geom.Pt(1, 0), geom.Pt(2, 0))
	assert.ErrorIs(t, err, gridgraph.ErrWaterCell)
	_, err = gg.ShortestPath(geom.Pt(0, 0), geom.Pt(9, 9))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
