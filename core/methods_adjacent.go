// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique positions sorted row-major.
package core

import (
	"fmt"

	"github.com/katalvlaran/zgrid/coord"
)

// NeighborIDs returns the positions adjacent to id, sorted row-major.
//
// Implementation:
//   - Stage 1: Validate the vertex under muVert (ErrVertexNotFound).
//   - Stage 2: Snapshot the adjacency bucket under muEdgeAdj.
//   - Stage 3: Sort the snapshot.
//
// Complexity:
//   - Time O(k log k), Space O(k), where k is the degree of id.
func (g *Graph) NeighborIDs(id coord.Pos) ([]coord.Pos, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	nbrs := make([]coord.Pos, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		nbrs = append(nbrs, nbr)
	}
	g.muEdgeAdj.RUnlock()
	sortPositions(nbrs)

	return nbrs, nil
}

// AdjacencyList returns a snapshot mapping each vertex to its sorted neighbours.
// Slices are freshly allocated; map iteration order is still Go's, so use
// Vertices() for a stable key order.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[coord.Pos][]coord.Pos {
	g.muEdgeAdj.RLock()
	out := make(map[coord.Pos][]coord.Pos, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		list := make([]coord.Pos, 0, len(nbrs))
		for nbr := range nbrs {
			list = append(list, nbr)
		}
		out[id] = list
	}
	g.muEdgeAdj.RUnlock()

	for _, list := range out {
		sortPositions(list)
	}

	return out
}
