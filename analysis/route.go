package analysis

import (
	"fmt"

	"github.com/katalvlaran/regmap/core"
	"github.com/katalvlaran/regmap/gridgraph"
)

// stepLetter maps a room-to-room delta (two cells) to its direction letter.
var stepLetter = map[core.Coordinate]byte{
	core.North.Scale(2): 'N',
	core.East.Scale(2):  'E',
	core.South.Scale(2): 'S',
	core.West.Scale(2):  'W',
}

// Route spells one shortest route from the origin to target as a string of
// N, E, S and W moves, following the parents recorded in dm. The origin
// itself yields "".
// Returns ErrNilGraph, a wrapped gridgraph.ErrNotRoom when target is not a
// room, or ErrUnreachable when dm has no distance for it.
func Route(gg *gridgraph.GridGraph, dm *DistanceMap, target core.Coordinate) (string, error) {
	if gg == nil || dm == nil {
		return "", ErrNilGraph
	}
	if !gg.HasVertex(target) {
		return "", fmt.Errorf("analysis: route to %v: %w", target, gridgraph.ErrNotRoom)
	}
	d, ok := dm.Get(target)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, target)
	}

	moves := make([]byte, d)
	cur := target
	for i := d - 1; i >= 0; i-- {
		prev, ok := dm.parent[cur]
		if !ok {
			return "", fmt.Errorf("%w: broken path at %v", ErrUnreachable, cur)
		}
		moves[i] = stepLetter[core.Coordinate{X: cur.X - prev.X, Y: cur.Y - prev.Y}]
		cur = prev
	}

	return string(moves), nil
}
