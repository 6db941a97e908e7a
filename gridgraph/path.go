package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/ringbuf"
)

// ShortestPath returns a fewest-steps path over land cells from `from` to
// `to`, both included. Neighbors are explored in connectivity order, so the
// result is deterministic.
//
// Errors: ErrOutOfBounds, ErrWaterCell, ErrNoPath, ErrFrontierOverflow.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ShortestPath(from, to geom.Point2D) ([]geom.Point2D, error) {
	for _, p := range [2]geom.Point2D{from, to} {
		if !gg.InBounds(p) {
			return nil, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, p, gg.Bounds)
		}
		if !gg.IsLand(p) {
			return nil, fmt.Errorf("%w: %v", ErrWaterCell, p)
		}
	}

	queue, err := ringbuf.New(gg.frontierCap(), from)
	if err != nil {
		return nil, err
	}
	prev := map[geom.Point2D]geom.Point2D{}
	seen := map[geom.Point2D]bool{from: true}

	for {
		u, ok := queue.Read()
		if !ok {
			return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, from, to)
		}
		if u == to {
			return reconstruct(prev, to), nil
		}
		for _, v := range gg.Neighbors(u) {
			if seen[v] || !gg.IsLand(v) {
				continue
			}
			seen[v] = true
			prev[v] = u
			if err = gg.enqueue(queue, v); err != nil {
				return nil, err
			}
		}
	}
}
