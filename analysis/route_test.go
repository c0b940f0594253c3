package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regmap/analysis"
	"github.com/katalvlaran/regmap/core"
	"github.com/katalvlaran/regmap/gridgraph"
)

var letterStep = map[rune]core.Coordinate{'N': core.North, 'E': core.East, 'S': core.South, 'W': core.West}

// replay walks route over g from the origin, failing on any step that does
// not cross a door into a room, and returns where it ends.
func replay(t *testing.T, g *core.Grid, route string) core.Coordinate {
	t.Helper()
	cur := core.Origin
	for _, r := range route {
		d := letterStep[r]
		require.Truef(t, g.Is(cur.Add(d), core.Door), "no door %c of %v", r, cur)
		cur = cur.Add(d.Scale(2))
		require.Truef(t, g.Is(cur, core.Room), "no room at %v", cur)
	}
	return cur
}

func TestRoute_Linear(t *testing.T) {
	gg := mustGraph(t, "^WNE$")
	dm, err := analysis.Distances(gg)
	require.NoError(t, err)

	route, err := analysis.Route(gg, dm, core.Coordinate{X: 0, Y: -2})
	require.NoError(t, err)
	assert.Equal(t, "WNE", route)

	route, err = analysis.Route(gg, dm, core.Origin)
	require.NoError(t, err)
	assert.Equal(t, "", route)
}

// Every reachable room has a route of exactly its distance that replays on the grid.
func TestRoute_AllRooms(t *testing.T) {
	for _, tc := range examples {
		for _, alg := range algorithms {
			gg := mustGraph(t, tc.input)
			dm, err := analysis.Distances(gg, analysis.WithAlgorithm(alg))
			require.NoError(t, err)
			for _, room := range dm.Rooms() {
				route, err := analysis.Route(gg, dm, room)
				require.NoError(t, err)
				d, _ := dm.Get(room)
				assert.Len(t, route, d)
				assert.Equal(t, room, replay(t, gg.Grid(), route))
			}
		}
	}
}

func TestRoute_Errors(t *testing.T) {
	gg := mustParse(t, "#####\n#.#.#\n#-#-#\n#.#X#\n#####")
	dm, err := analysis.Distances(gg)
	require.NoError(t, err)

	_, err = analysis.Route(nil, dm, core.Origin)
	assert.ErrorIs(t, err, analysis.ErrNilGraph)
	_, err = analysis.Route(gg, nil, core.Origin)
	assert.ErrorIs(t, err, analysis.ErrNilGraph)

	_, err = analysis.Route(gg, dm, core.Coordinate{X: -2, Y: 0})
	assert.ErrorIs(t, err, analysis.ErrUnreachable)

	_, err = analysis.Route(gg, dm, core.Coordinate{X: -1, Y: 0})
	assert.ErrorIs(t, err, gridgraph.ErrNotRoom)
}
