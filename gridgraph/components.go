package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/ringbuf"
)

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are returned in row-major order of their first cell; each
// component lists its cells in BFS discovery order.
//
// The BFS frontier is a ringbuf.Buffer of capacity MaxFrontier (default: cell
// count); outgrowing it fails with ErrFrontierOverflow. The queue is drained
// by every component, so it is shared across the whole scan.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() ([][]geom.Point2D, error) {
	seen := make([]bool, gg.Bounds.Area())
	queue, err := ringbuf.New[geom.Point2D](gg.frontierCap())
	if err != nil {
		return nil, err
	}
	var comps [][]geom.Point2D

	for p0 := range gg.Bounds.Points() {
		if !gg.IsLand(p0) || seen[gg.Index(p0)] {
			continue // water or already collected
		}
		seen[gg.Index(p0)] = true
		if err = gg.enqueue(queue, p0); err != nil {
			return nil, err
		}
		var comp []geom.Point2D

		for {
			u, ok := queue.Read()
			if !ok {
				break
			}
			comp = append(comp, u)
			for _, d := range gg.neighborOffsets {
				v := u.Add(d)
				if !gg.IsLand(v) {
					continue
				}
				vi := gg.Index(v)
				if seen[vi] {
					continue
				}
				seen[vi] = true
				if err = gg.enqueue(queue, v); err != nil {
					return nil, err
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

func (gg *GridGraph) enqueue(q *ringbuf.Buffer[geom.Point2D], p geom.Point2D) error {
	if err := q.Write(p); err != nil {
		return fmt.Errorf("%w: at %v: %w", ErrFrontierOverflow, p, err)
	}
	return nil
}
