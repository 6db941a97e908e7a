// Package gridkit is a small toolbox for code that walks integer grids:
// puzzle solvers, map tools and anything else that thinks in cells.
//
// What is inside?
//
//   - geom:      Point2D, Point3D, Rect2D and Rect3D with lazy point iteration
//   - direction: 4-, 6- (hex) and 8-connected direction enums with table turns
//   - dictheap:  a keyed min-heap supporting update and delete by key
//   - ringbuf:   a fixed-capacity FIFO that refuses to overwrite
//   - ilist:     a doubly-linked list addressed by stable slot index
//   - gridgraph: a rectangular [][]int grid viewed as a graph (islands,
//     bridging, shortest paths) built from the packages above
//
// The containers are single-owner and not safe for concurrent use.
//
// Quick start:
//
//	r := geom.NewRect2D(geom.Pt(0, 0), geom.Pt(2, 1))
//	for p := range r.Points() {
//		fmt.Println(p, direction.Right.Step(p))
//	}
//
// The gridkit command (cmd/gridkit) exposes the grid searches over plain-text
// input files.
package gridkit
