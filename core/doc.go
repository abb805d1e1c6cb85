// Package core provides the undirected position graph that zgrid builds from
// a grid's "on" cells.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are coord.Pos values; each remembers the glyph it was built from.
//   - Edges are undirected and unweighted; at most one edge joins two vertices.
//   - Self-loops are rejected unless WithLoops is given.
//   - Adjacency is a nested map adjacency[from][to] = struct{}{}, mirrored for
//     both endpoints, so HasEdge/AddEdge/RemoveEdge are O(1).
//   - Separate sync.RWMutex locks guard the vertex catalog (muVert) and the
//     adjacency (muEdgeAdj). Lock order is always muVert -> muEdgeAdj.
//
// Determinism:
//
//	Vertices(), Edges() and NeighborIDs() return positions in row-major order
//	(coord.Less), so every traversal built on top of them is reproducible.
//
// Core Methods:
//
//	AddVertex(id, glyph)       // O(1), idempotent
//	HasVertex(id) bool         // O(1)
//	RemoveVertex(id) error     // O(deg(v))
//	AddEdge(from, to) error    // O(1), endpoints must exist
//	HasEdge(from, to) bool     // O(1)
//	RemoveEdge(from, to) error // O(1)
//	NeighborIDs(id) ([]coord.Pos, error)
//	Vertices() []coord.Pos
//	Edges() []Edge
//	Clone() *Graph
//
// Errors:
//
//	ErrVertexNotFound  - an operation referenced a missing vertex.
//	ErrEdgeNotFound    - RemoveEdge on a missing edge.
//	ErrLoopNotAllowed  - AddEdge(v, v) without WithLoops.
package core
