package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/zgrid/coord"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is a graph node placed at a grid position.
type Vertex struct {
	// ID is the grid position of the node.
	ID coord.Pos

	// Glyph is the cell content the node was created from.
	Glyph rune
}

// Edge is an undirected connection. From precedes To in row-major order.
type Edge struct {
	From, To coord.Pos
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, unweighted graph over grid positions.
//
// muVert protects vertices; muEdgeAdj protects adjacency and edgeCount.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	allowLoops bool

	vertices map[coord.Pos]*Vertex

	// adjacency[a][b] exists iff an edge joins a and b; both directions are stored.
	adjacency map[coord.Pos]map[coord.Pos]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[coord.Pos]*Vertex),
		adjacency: make(map[coord.Pos]map[coord.Pos]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
