// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns positions in row-major order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/zgrid/coord"
)

// AddVertex inserts a vertex at id carrying glyph, if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under muVert write lock, check presence; if missing, register a Vertex.
//   - Stage 2: Under muEdgeAdj write lock, bootstrap the adjacency bucket so edge
//     methods can rely on it existing for every vertex.
//
// Behavior highlights:
//   - Adding an existing vertex is a no-op; its glyph is not overwritten.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id coord.Pos, glyph rune) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Glyph: glyph}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[coord.Pos]struct{})
	}
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether a vertex exists at id.
// Complexity: O(1).
func (g *Graph) HasVertex(id coord.Pos) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex at id, or ErrVertexNotFound.
func (g *Graph) Vertex(id coord.Pos) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	return *v, nil
}

// RemoveVertex deletes the vertex and every incident edge.
//
// Implementation:
//   - Stage 1: Lock muVert then muEdgeAdj (global lock order).
//   - Stage 2: Drop the mirrored entry from each neighbour's bucket.
//   - Stage 3: Drop the vertex bucket and the catalog entry.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(id coord.Pos) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}
	for nbr := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex positions in row-major order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []coord.Pos {
	g.muVert.RLock()
	ids := make([]coord.Pos, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sortPositions(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id (a self-loop counts once).
func (g *Graph) Degree(id coord.Pos) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// sortPositions orders ps row-major in place.
func sortPositions(ps []coord.Pos) {
	slices.SortFunc(ps, comparePos)
}

// comparePos is the three-way form of coord.Less.
func comparePos(a, b coord.Pos) int {
	switch {
	case coord.Less(a, b):
		return -1
	case coord.Less(b, a):
		return 1
	}
	return 0
}
