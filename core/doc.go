// Package core provides the facility model shared by every regmap package:
// integer coordinates, terrain classifications and the sparse Grid that maps
// one to the other.
//
// A facility G is a set of Rooms joined by Doors, surrounded by Walls:
//
//	#####
//	#.|.#
//	#-###
//	#.|X#
//	#####
//
//   - Rooms sit on even offsets from the origin along any path.
//   - A Door sits on the odd step between two adjacent rooms.
//   - Every other coordinate inside the padded boundary is a Wall.
//
// Why a sparse map?
//
//   - The extent of a facility is unknown until its directions have been read,
//     so cells are keyed by Coordinate rather than stored in a dense array.
//   - Walls are only materialized once, by FillWalls, which also fixes the
//     boundary and freezes the grid.
//
// Lifecycle:
//
//	g := core.NewGrid()        // origin room only, mutable
//	_ = g.SetDoor(c1)          // builder phase
//	_ = g.SetRoom(c2)
//	g.FillWalls()              // walls + boundary, grid becomes read-only
//	fmt.Println(g)             // rendering as shown above
//
// A frozen Grid is never mutated again, so any number of goroutines may read it
// without locking.
//
// Complexity:
//
//	Set/Kind/Is           O(1)
//	FillWalls             O(W·H) over the padded boundary
//	String/ParseRendering O(W·H)
//	Coordinates           O(N log N)
//
// Errors:
//
//	ErrFrozen       - Set after FillWalls
//	ErrUnknownKind  - Set with Unknown or an out-of-range kind
//	ErrBadRendering - ParseRendering input is ragged, lacks an origin or holds
//	                  unknown characters
package core
