// Package gridgraph treats the "on" cells of a sparse glyph grid as a graph,
// enabling shortest paths, component analysis and minimal-cost bridging.
//
// What:
//
//   - Build turns every stored cell whose glyph is On or one of Extra into a
//     vertex of a *core.Graph, and joins each vertex to its right (+1,0) and
//     down (0,+1) neighbour when that neighbour is also a node glyph.
//   - Extra glyphs are markers: Marker('S') returns where the 'S' cell is.
//   - ShortestPath / ShortestPathLength run an unweighted BFS over the graph.
//   - ConnectedComponents lists the "islands" of node cells.
//   - Bridge finds the fewest non-node cells to convert so two islands touch.
//
// Why right/down only:
//
//	Every undirected edge between orthogonal neighbours is seen exactly once
//	from its upper or left endpoint, so checking two directions per cell
//	yields the full planar grid graph with no diagonal edges.
//
// Complexity:
//
//   - Build:               O(N log N) for N stored cells (sorted adjacency).
//   - ShortestPath:        O(V + E).
//   - ConnectedComponents: O(V + E).
//   - Bridge:              O(N) cells, each settled once by a 0-1 BFS.
//
// Errors:
//
//   - ErrNodeNotFound: a path endpoint is not a node.
//   - ErrNoPath: endpoints (or components) are not connected.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
