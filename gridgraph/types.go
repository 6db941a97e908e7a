// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridkit.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no path exists between the requested endpoints.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point outside grid")
	// ErrWaterCell indicates a land-only search was asked to start or end on water.
	ErrWaterCell = errors.New("gridgraph: endpoint is not a land cell")
	// ErrFrontierOverflow indicates a search frontier outgrew GridOptions.MaxFrontier.
	ErrFrontierOverflow = errors.New("gridgraph: search frontier exceeded MaxFrontier")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity in direction.AllDir4 order: Up, Right, Down, Left.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity in direction.AllDir8 order: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// MaxFrontier caps the BFS queue. Zero means the cell count, which no
	// correct search can exceed.
	MaxFrontier int
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4, MaxFrontier=0 (cell count).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Bounds spans (0,0)..(W-1,H-1); CellValues[y][x] holds the original input value.
// Conn, LandThreshold and MaxFrontier are set from GridOptions during construction.
// neighborOffsets is precomputed from the direction vectors for Conn.
type GridGraph struct {
	Bounds          geom.Rect2D
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	MaxFrontier     int
	neighborOffsets []geom.Point2D
}
