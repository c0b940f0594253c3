package gridgraph

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/regmap/core"
	"github.com/katalvlaran/regmap/dijkstra"
)

// GridGraph is the room/door graph of one frozen facility grid.
// It holds no mutable state and is safe for concurrent readers.
type GridGraph struct {
	grid  *core.Grid
	rooms []core.Coordinate
}

// New wraps g as a graph. Returns ErrNilGrid for a nil grid and
// ErrNotFinalized for a grid that FillWalls has not frozen.
// Complexity: O(R log R) to index the rooms.
func New(g *core.Grid) (*GridGraph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Frozen() {
		return nil, ErrNotFinalized
	}

	return &GridGraph{grid: g, rooms: g.Coordinates(core.Room)}, nil
}

// Grid returns the wrapped grid.
func (gg *GridGraph) Grid() *core.Grid { return gg.grid }

// HasVertex reports whether c is a room.
func (gg *GridGraph) HasVertex(c core.Coordinate) bool { return gg.grid.Is(c, core.Room) }

// Len returns the number of rooms.
func (gg *GridGraph) Len() int { return len(gg.rooms) }

// Rooms returns every room sorted row-major. The slice is a copy.
func (gg *GridGraph) Rooms() []core.Coordinate {
	out := make([]core.Coordinate, len(gg.rooms))
	copy(out, gg.rooms)

	return out
}

// Doors returns every door sorted row-major.
func (gg *GridGraph) Doors() []core.Coordinate { return gg.grid.Coordinates(core.Door) }

// Neighbors returns the rooms reachable from c through exactly one door.
// Coordinates the grid does not know are treated as absent.
// A coordinate that is not a room has no neighbors.
func (gg *GridGraph) Neighbors(c core.Coordinate) mapset.Set[core.Coordinate] {
	set := mapset.New[core.Coordinate]()
	if !gg.HasVertex(c) {
		return set
	}
	for _, d := range core.Compass {
		if gg.grid.Is(c.Add(d), core.Door) && gg.grid.Is(c.Add(d.Scale(2)), core.Room) {
			set.Put(c.Add(d.Scale(2)))
		}
	}

	return set
}

// NeighborIDs returns Neighbors(c) sorted row-major.
// Returns ErrNotRoom if c is not a room.
func (gg *GridGraph) NeighborIDs(c core.Coordinate) ([]core.Coordinate, error) {
	if !gg.HasVertex(c) {
		return nil, fmt.Errorf("%w: %v", ErrNotRoom, c)
	}
	set := gg.Neighbors(c)
	out := make([]core.Coordinate, 0, set.Size())
	set.Each(func(n core.Coordinate) { out = append(out, n) })
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out, nil
}

// Arcs returns one unit-weight arc per neighbor of c, in NeighborIDs order.
// Returns ErrNotRoom if c is not a room.
func (gg *GridGraph) Arcs(c core.Coordinate) ([]dijkstra.Arc[core.Coordinate], error) {
	ids, err := gg.NeighborIDs(c)
	if err != nil {
		return nil, err
	}
	arcs := make([]dijkstra.Arc[core.Coordinate], len(ids))
	for i, id := range ids {
		arcs[i] = dijkstra.Arc[core.Coordinate]{To: id, Weight: 1}
	}

	return arcs, nil
}
