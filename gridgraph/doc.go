// Package gridgraph treats a finished facility grid as an undirected graph
// whose vertices are rooms and whose edges are doors.
//
// What:
//
//   - GridGraph wraps a frozen *core.Grid; construction fails on a grid whose
//     walls have not been filled.
//   - Two rooms are adjacent when the cell between them, one step along N, E, S
//     or W, is a Door.
//   - Neighbors returns a mapset.Set; NeighborIDs returns the same rooms sorted
//     row-major so traversal order is reproducible.
//   - Arcs exposes the same adjacency with unit weights for dijkstra.
//   - ConnectedComponents groups rooms by reachability.
//
// Why:
//
//   - bfs and dijkstra stay generic over their vertex type; this package is
//     the only place that knows what a door is.
//
// Complexity:
//
//   - Neighbors, NeighborIDs, Arcs: O(1) (four probes).
//   - Rooms, Doors:                 O(N log N).
//   - ConnectedComponents:          O(R + D), Memory: O(R).
//
// Errors:
//
//   - ErrNilGrid:      New called with nil.
//   - ErrNotFinalized: grid not frozen by FillWalls.
//   - ErrNotRoom:      NeighborIDs or Arcs on a coordinate that is not a room.
package gridgraph
