package gridgraph

import (
	"slices"

	"github.com/katalvlaran/gridkit/dictheap"
	"github.com/katalvlaran/gridkit/geom"
)

// frontierItem orders cells by distance, then by row-major index so that
// equal-cost expansions are popped in a reproducible order.
type frontierItem struct {
	dist  int
	order int
}

func lessFrontier(a, b frontierItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.order < b.order
}

// ExpandIsland finds a minimum‐conversion path of “water” cells
// to connect any cell in component srcComp to any cell in component dstComp,
// as identified by ConnectedComponents(). Each water‐cell conversion costs 1.
// Returns the sequence of cells representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi‐source Dijkstra from all srcComp cells on a dictheap.Heap keyed
//     by cell, so each cell has exactly one live frontier entry:
//     • Moving into an existing land cell   → cost 0
//     • Moving into a water cell             → cost 1
//  3. Stop when any dstComp cell is settled.
//  4. Reconstruct path via predecessors map.
//
// Complexity: O(W·H · log(W·H)).
// Memory:     O(W·H) for distance, settled, and prev maps.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []geom.Point2D, cost int, err error) {
	comps, err := gg.ConnectedComponents()
	if err != nil {
		return nil, 0, err
	}
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[geom.Point2D]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	dist := make(map[geom.Point2D]int, gg.Bounds.Area())
	prev := make(map[geom.Point2D]geom.Point2D, gg.Bounds.Area())
	settled := make(map[geom.Point2D]bool, gg.Bounds.Area())

	pq := dictheap.New[geom.Point2D](lessFrontier)
	for _, p := range comps[srcComp] {
		dist[p] = 0
		pq.Set(p, frontierItem{dist: 0, order: gg.Index(p)})
	}

	target, found := geom.Point2D{}, false
	for {
		u, item, ok := pq.RemoveFirst()
		if !ok {
			break
		}
		settled[u] = true
		if _, ok := dstSet[u]; ok {
			target, found = u, true
			break
		}
		for _, v := range gg.Neighbors(u) {
			if settled[v] {
				continue
			}
			step := 0
			if !gg.IsLand(v) {
				step = 1
			}
			nd := item.dist + step
			if old, seen := dist[v]; seen && nd >= old {
				continue
			}
			dist[v] = nd
			prev[v] = u
			pq.Set(v, frontierItem{dist: nd, order: gg.Index(v)})
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	return reconstruct(prev, target), dist[target], nil
}

// reconstruct follows prev from target back to a cell with no predecessor.
func reconstruct(prev map[geom.Point2D]geom.Point2D, target geom.Point2D) []geom.Point2D {
	path := []geom.Point2D{target}
	for at, ok := prev[target]; ok; at, ok = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}
