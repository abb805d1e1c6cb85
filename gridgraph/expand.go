package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/zgrid/coord"
)

// Bridge finds a minimum-conversion route of stored non-node cells connecting
// any cell of component srcComp to any cell of component dstComp, as numbered
// by ConnectedComponents. Each non-node cell on the route costs 1; node cells
// are free. Absent cells are walls. Returns the route (both land ends included)
// and the number of cells to convert.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from every srcComp cell over 4-neighbours:
//     • stepping onto a node cell     → cost 0 (deque front)
//     • stepping onto a non-node cell → cost 1 (deque back)
//  3. Stop when a dstComp cell is popped.
//  4. Reconstruct the route via predecessor links.
//
// Complexity: O(N) for N stored cells reachable from srcComp.
func (g *Graph) Bridge(srcComp, dstComp int) (path []coord.Pos, cost int, err error) {
	comps := g.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	dstSet := make(map[coord.Pos]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	dist := make(map[coord.Pos]int)
	prev := make(map[coord.Pos]coord.Pos)
	done := make(map[coord.Pos]bool)

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[srcComp] {
		dist[p] = 0
		dq.PushBack(p)
	}

	var target coord.Pos
	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(coord.Pos)
		if done[u] {
			continue
		}
		done[u] = true
		if _, ok := dstSet[u]; ok {
			target, found = u, true
			break
		}
		for _, v := range coord.Near4(u) {
			glyph, ok := g.src.Peek(v)
			if !ok {
				continue
			}
			step := 1
			if g.IsNodeGlyph(glyph) {
				step = 0
			}
			nd := dist[u] + step
			if old, seen := dist[v]; seen && old <= nd {
				continue
			}
			dist[v] = nd
			prev[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	if !found {
		return nil, 0, fmt.Errorf("%w: components %d and %d", ErrNoPath, srcComp, dstComp)
	}
	// Reconstruct path
	for at := target; ; {
		path = append([]coord.Pos{at}, path...)
		p, ok := prev[at]
		if !ok {
			break
		}
		at = p
	}

	return path, dist[target], nil
}
