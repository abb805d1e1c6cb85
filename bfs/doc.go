// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start position.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from position → distance (edges) from start
//   - Parent: map from position → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error) and WithFilterNeighbor pruning.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - WithTarget stops the search as soon as the target is visited.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbours in row-major order and BFS
//	enqueues them in that order, so the visit sequence and every returned
//	path are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(3))
//	path, err := bfs.ShortestPath(g, source, target)
//	n, err := bfs.ShortestPathLength(g, source, target)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start (source) vertex does not exist.
//   - ErrTargetNotFound       if a shortest-path target does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               if the target is not reachable.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
