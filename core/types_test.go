package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/regmap/core"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := core.Coordinate{X: 3, Y: -2}
	assert.Equal(t, core.Coordinate{X: 4, Y: -2}, p.Add(core.East))
	assert.Equal(t, core.Coordinate{X: 0, Y: -2}, core.North.Scale(2))
	assert.Equal(t, "3,-2", p.String())

	// Row-major ordering: y first, then x.
	assert.True(t, core.Coordinate{X: 5, Y: -3}.Less(p))
	assert.True(t, core.Coordinate{X: 2, Y: -2}.Less(p))
	assert.False(t, p.Less(p))

	// Generic over any signed integer type.
	q := core.Point[int8]{X: 1, Y: 1}
	assert.Equal(t, core.Point[int8]{X: 2, Y: 2}, q.Add(q))
}

func TestTerrainKind_String(t *testing.T) {
	cases := map[core.TerrainKind]string{
		core.Unknown:        "unknown",
		core.Room:           "room",
		core.Door:           "door",
		core.Wall:           "wall",
		core.TerrainKind(9): "TerrainKind(9)",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
}

func TestBoundary(t *testing.T) {
	b := core.Boundary{MinX: -2, MaxX: 0, MinY: -2, MaxY: 0}
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.True(t, b.Contains(core.Origin))
	assert.False(t, b.Contains(core.Coordinate{X: 1, Y: 0}))

	p := b.Pad(1)
	assert.Equal(t, core.Boundary{MinX: -3, MaxX: 1, MinY: -3, MaxY: 1}, p)
	assert.Equal(t, 5, p.Width())
}

func TestCompass_Order(t *testing.T) {
	assert.Equal(t, [4]core.Coordinate{core.North, core.East, core.South, core.West}, core.Compass)
	for _, d := range core.Compass {
		// Opposite directions cancel out.
		assert.Equal(t, core.Origin, d.Add(d.Scale(-1)))
	}
}
