package analysis

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/regmap/bfs"
	"github.com/katalvlaran/regmap/core"
	"github.com/katalvlaran/regmap/dijkstra"
	"github.com/katalvlaran/regmap/gridgraph"
)

// DistanceMap is the read-only result of Distances: every room reachable from
// the origin with its distance in doors, plus one shortest-path parent per room.
type DistanceMap struct {
	dist   map[core.Coordinate]int
	parent map[core.Coordinate]core.Coordinate
}

// Distances computes the door distance from the origin to every reachable room.
// The origin maps to 0; unreachable rooms are absent.
// Returns ErrNilGraph, ErrUnknownAlgorithm, the context error, or a wrapped
// engine error.
// Complexity: O(R + D) for BFS, O((R + D) log R) for Dijkstra.
func Distances(gg *gridgraph.GridGraph, opts ...Option) (*DistanceMap, error) {
	if gg == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	switch o.Algorithm {
	case AlgorithmDijkstra:
		return dijkstraDistances(gg, o)
	default:
		return bfsDistances(gg, o)
	}
}

func bfsDistances(gg *gridgraph.GridGraph, o Options) (*DistanceMap, error) {
	res, err := bfs.BFS[core.Coordinate](gg, core.Origin, bfs.WithContext[core.Coordinate](o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("analysis: bfs: %w", err)
	}

	return &DistanceMap{dist: res.Depth, parent: res.Parent}, nil
}

func dijkstraDistances(gg *gridgraph.GridGraph, o Options) (*DistanceMap, error) {
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}
	dist, prev, err := dijkstra.Dijkstra[core.Coordinate](gg, core.Origin, dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("analysis: dijkstra: %w", err)
	}
	dm := &DistanceMap{dist: make(map[core.Coordinate]int, len(dist)), parent: prev}
	for c, d := range dist {
		dm.dist[c] = int(d)
	}

	return dm, nil
}

// Len returns the number of reachable rooms, origin included.
func (dm *DistanceMap) Len() int { return len(dm.dist) }

// Get returns the distance of room c and whether c is reachable.
func (dm *DistanceMap) Get(c core.Coordinate) (int, bool) {
	d, ok := dm.dist[c]

	return d, ok
}

// Each calls fn for every reachable room in unspecified order.
func (dm *DistanceMap) Each(fn func(c core.Coordinate, d int)) {
	for c, d := range dm.dist {
		fn(c, d)
	}
}

// Rooms returns every reachable room sorted row-major.
func (dm *DistanceMap) Rooms() []core.Coordinate {
	out := make([]core.Coordinate, 0, len(dm.dist))
	for c := range dm.dist {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Furthest returns the room with the largest distance and that distance.
// Ties go to the room first in row-major order. An origin-only map returns
// (Origin, 0).
func (dm *DistanceMap) Furthest() (core.Coordinate, int) {
	best, bestD := core.Origin, 0
	for c, d := range dm.dist {
		if d > bestD || (d == bestD && c.Less(best)) {
			best, bestD = c, d
		}
	}
	return best, bestD
}
