package gridgraph

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/regmap/core"
)

// ConnectedComponents finds every maximal set of rooms joined by doors.
// Components are ordered by their first room and each is sorted row-major,
// so a facility built from directions yields exactly one component that
// starts at its top-left room.
//
// Time:   O(R log R + D).
// Memory: O(R) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]core.Coordinate {
	seen := mapset.New[core.Coordinate]()
	var comps [][]core.Coordinate

	for _, r0 := range gg.rooms {
		if seen.Has(r0) {
			continue
		}
		// BFS to collect component
		queue := []core.Coordinate{r0}
		seen.Put(r0)
		for qi := 0; qi < len(queue); qi++ {
			ids, _ := gg.NeighborIDs(queue[qi])
			for _, v := range ids {
				if !seen.Has(v) {
					seen.Put(v)
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, sortRowMajor(queue))
	}
	return comps
}

// sortRowMajor sorts cs in place by (y, x) and returns it.
func sortRowMajor(cs []core.Coordinate) []core.Coordinate {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
	return cs
}
