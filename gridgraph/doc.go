// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis, shortest land paths and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//     Its Bounds is a geom.Rect2D and its neighbor offsets are the
//     direction.Dir4 / direction.Dir8 unit vectors.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (Dijkstra on a dictheap.Heap) to connect two islands.
//   - Finds fewest-step land paths (BFS on a ringbuf.Buffer).
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Puzzle grids: flood fills, maze walks and region counting.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ShortestPath:        O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.MaxFrontier: BFS queue capacity (0 = cell count).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no path exists between the requested cells.
//   - ErrOutOfBounds, ErrWaterCell: invalid ShortestPath endpoints.
//   - ErrFrontierOverflow: a BFS frontier outgrew MaxFrontier (wraps ringbuf.ErrCapacityExceeded).
package gridgraph
