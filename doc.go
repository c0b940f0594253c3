// Package regmap builds facility maps from direction regexes and answers
// shortest-path questions about them.
//
// What is a facility?
//
//	A grid of rooms joined by doors, grown from an origin room X by a
//	direction string such as ^ENWWW(NEEE|SSE(EE|N))$:
//
//		#########
//		#.|.|.|.#
//		#-#######
//		#.|.|.|.#
//		#-#####-#
//		#.#.#X|.#
//		#-#-#####
//		#.|.|.|.#
//		#########
//
//	N/E/S/W step through a door into the next room; (a|b|) branches, each
//	alternative resuming from the fork; after ) the walk continues from the
//	fork as well.
//
// Packages:
//
//	builder/    Tokenize and Build: direction string → frozen *core.Grid
//	core/       Coordinate, TerrainKind, Grid, FillWalls, rendering
//	gridgraph/  rooms as vertices, doors as edges
//	bfs/        generic breadth-first search with hooks
//	dijkstra/   generic binary-heap Dijkstra
//	analysis/   Distances, Summarize, Route
//	cmd/regmap  command-line driver
//
// Quick start:
//
//	far, many, err := regmap.Solve("^WNE$") // 3, 0, nil
//
// Analyze returns the intermediate products as well, for rendering or
// further queries.
package regmap
