// Package analysis answers the two questions asked of every facility: how many
// doors separate the origin from the furthest room, and how many rooms lie at
// least Threshold doors away.
//
// Pipeline:
//
//	g, _ := builder.Build(directions)
//	gg, _ := gridgraph.New(g)
//	dm, _ := analysis.Distances(gg)        // BFS from the origin
//	s := analysis.Summarize(dm)            // s.MaxDistance, s.FarRooms
//
// Distances runs bfs by default. WithAlgorithm(AlgorithmDijkstra) runs the
// weighted engine over the same unit-weight arcs and must agree with BFS.
// The DistanceMap holds exactly the rooms reachable from the origin and keeps
// the shortest-path tree, so Route can spell out one shortest route to any of
// them as a direction string.
//
// Errors:
//
//   - ErrNilGraph:         Distances or Route called without a graph.
//   - ErrUnknownAlgorithm: WithAlgorithm or ParseAlgorithm got an unknown name.
//   - ErrUnreachable:      Route target has no distance.
package analysis
