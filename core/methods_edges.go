// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/zgrid/coord"
)

// AddEdge joins from and to with an undirected edge.
// Steps:
//  1. Reject loops unless allowed (ErrLoopNotAllowed).
//  2. Both endpoints must already be vertices (ErrVertexNotFound).
//  3. Lock muEdgeAdj; if the edge exists this is a no-op.
//  4. Link adjacency[from][to] and the mirror adjacency[to][from].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to coord.Pos) error {
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.muVert.RLock()
	_, okFrom := g.vertices[from]
	_, okTo := g.vertices[to]
	g.muVert.RUnlock()
	if !okFrom {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, from)
	}
	if !okTo {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, to)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, exists := g.adjacency[from][to]; exists {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge between from and to, or returns ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to coord.Pos) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("%w: %v-%v", ErrEdgeNotFound, from, to)
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether from and to are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to coord.Pos) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, ordered by From then To (row-major).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for a, nbrs := range g.adjacency {
		for b := range nbrs {
			if coord.Less(b, a) {
				continue // reported from the other endpoint
			}
			out = append(out, Edge{From: a, To: b})
		}
	}
	g.muEdgeAdj.RUnlock()

	slices.SortFunc(out, func(x, y Edge) int {
		if c := comparePos(x.From, y.From); c != 0 {
			return c
		}
		return comparePos(x.To, y.To)
	})

	return out
}
