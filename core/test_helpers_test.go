// Package core_test contains test helpers for regmap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Grid.
//   - Keep fixtures independent of the builder package so core tests only
//     exercise core itself.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regmap/core"
)

// Renderings used across core tests.
const (
	RenderWNE = "#####\n" +
		"#.|.#\n" +
		"#-###\n" +
		"#.|X#\n" +
		"#####"

	// RenderBranches is the finished map of ^ENWWW(NEEE|SSE(EE|N))$.
	RenderBranches = "#########\n" +
		"#.|.|.|.#\n" +
		"#-#######\n" +
		"#.|.|.|.#\n" +
		"#-#####-#\n" +
		"#.#.#X|.#\n" +
		"#-#-#####\n" +
		"#.|.|.|.#\n" +
		"#########"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NReaders = 32
	NRounds  = 50
)

// step maps a direction letter to its unit offset.
var step = map[rune]core.Coordinate{
	'N': core.North,
	'S': core.South,
	'E': core.East,
	'W': core.West,
}

// walk marks a door and a room for every letter of route, starting at the
// origin of g. Branching is deliberately unsupported here.
func walk(t *testing.T, g *core.Grid, route string) core.Coordinate {
	t.Helper()
	cur := core.Origin
	for _, r := range route {
		d, ok := step[r]
		require.Truef(t, ok, "walk: unsupported rune %q", r)
		require.NoError(t, g.SetDoor(cur.Add(d)))
		cur = cur.Add(d.Scale(2))
		require.NoError(t, g.SetRoom(cur))
	}
	return cur
}

// NewWNE returns the frozen facility of ^WNE$.
func NewWNE(t *testing.T) *core.Grid {
	t.Helper()
	g := core.NewGrid()
	walk(t, g, "WNE")
	g.FillWalls()

	return g
}
