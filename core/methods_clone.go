// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
package core

import "github.com/katalvlaran/zgrid/coord"

// CloneEmpty returns a new Graph with the same configuration and vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.cloneVertices()
}

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Both locks are held for the whole copy, so the clone is a consistent snapshot.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := g.cloneVertices()
	for a, nbrs := range g.adjacency {
		bucket := clone.adjacency[a]
		for b := range nbrs {
			bucket[b] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// cloneVertices copies configuration and vertex catalog. Caller holds muVert.
func (g *Graph) cloneVertices() *Graph {
	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Glyph: v.Glyph}
		clone.adjacency[id] = make(map[coord.Pos]struct{})
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[coord.Pos]*Vertex)
	g.adjacency = make(map[coord.Pos]map[coord.Pos]struct{})
	g.edgeCount = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
