// Package bfs provides a breadth-first search over any Graph[V],
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	BFS enqueues neighbors in the order Graph.NeighborIDs returns them, so a
//	graph with a stable neighbor order yields a reproducible visit sequence.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS[core.Coordinate](gg, core.Origin)
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    gg, core.Origin,
//	    bfs.WithContext[core.Coordinate](ctx),
//	    bfs.WithMaxDepth[core.Coordinate](1000),
//	    bfs.WithOnVisit(func(c core.Coordinate, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if Graph.NeighborIDs fails for any vertex.
//   - ErrNoPath               from Result.PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
