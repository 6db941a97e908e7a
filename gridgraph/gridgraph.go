// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of “land” cells
//   - Minimum-conversion expansions between components
//   - Shortest land paths between two cells
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"strings"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/geom"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []geom.Point2D
	if opts.Conn == Conn8 {
		for _, d := range direction.AllDir8() {
			offsets = append(offsets, d.Vector())
		}
	} else {
		for _, d := range direction.AllDir4() {
			offsets = append(offsets, d.Vector())
		}
	}
	bounds, err := geom.RectFromSize(geom.Origin2D, w, h)
	if err != nil {
		return nil, err
	}
	gg := &GridGraph{
		Bounds:          bounds,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		MaxFrontier:     opts.MaxFrontier,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D builds a GridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.Bounds.Width() }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.Bounds.Height() }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p geom.Point2D) bool {
	return gg.Bounds.Contains(p)
}

// Value returns the cell value at p; ok is false outside the grid.
func (gg *GridGraph) Value(p geom.Point2D) (v int, ok bool) {
	if !gg.InBounds(p) {
		return 0, false
	}
	return gg.CellValues[p.Y][p.X], true
}

// IsLand reports whether p is inside the grid and at least LandThreshold.
func (gg *GridGraph) IsLand(p geom.Point2D) bool {
	v, ok := gg.Value(p)
	return ok && v >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []geom.Point2D {
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds neighbors of p in connectivity order.
func (gg *GridGraph) Neighbors(p geom.Point2D) []geom.Point2D {
	out := make([]geom.Point2D, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		if q := p.Add(d); gg.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Render draws the grid row by row, one rune per cell, by scanning
// Bounds.Points() in row-major order.
func (gg *GridGraph) Render(cell func(p geom.Point2D, v int) rune) string {
	var sb strings.Builder
	sb.Grow(gg.Bounds.Area() + gg.Height())
	for p := range gg.Bounds.Points() {
		sb.WriteRune(cell(p, gg.CellValues[p.Y][p.X]))
		if p.X == gg.Bounds.Max.X {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Index maps p to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(p geom.Point2D) int {
	return p.Y*gg.Width() + p.X
}

// Coordinate converts a row‑major index back to a point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) geom.Point2D {
	w := gg.Width()
	return geom.Pt(idx%w, idx/w)
}

// frontierCap is the BFS queue capacity for this grid.
func (gg *GridGraph) frontierCap() int {
	if gg.MaxFrontier > 0 {
		return gg.MaxFrontier
	}
	return gg.Bounds.Area()
}
