package core

import (
	"fmt"
	"io"
	"strings"
)

// Rendering characters.
const (
	RuneWall     = '#'
	RuneRoom     = '.'
	RuneOrigin   = 'X'
	RuneDoorNS   = '-' // door between a room above and a room below
	RuneDoorEW   = '|' // door between a room to the left and a room to the right
	RuneUnknown  = '?' // only produced for coordinates an unfrozen grid has not classified
	lineSplitter = "\n"
)

// String renders the grid row by row (increasing y) and column by column
// (increasing x) over its Boundary, joining rows with a newline and adding no
// trailing newline. Walls are '#', rooms '.', the origin 'X', doors '-' when
// the cell above is a room and '|' otherwise.
// Complexity: O(W·H).
func (g *Grid) String() string {
	b := g.Boundary()
	var sb strings.Builder
	sb.Grow(b.Height() * (b.Width() + 1))
	for y := b.MinY; y <= b.MaxY; y++ {
		if y > b.MinY {
			sb.WriteString(lineSplitter)
		}
		for x := b.MinX; x <= b.MaxX; x++ {
			sb.WriteRune(g.runeAt(Coordinate{X: x, Y: y}))
		}
	}
	return sb.String()
}

// Render writes g.String() followed by a newline to w.
func Render(w io.Writer, g *Grid) error {
	if _, err := io.WriteString(w, g.String()+lineSplitter); err != nil {
		return fmt.Errorf("core: render: %w", err)
	}
	return nil
}

// runeAt returns the rendering character of c.
func (g *Grid) runeAt(c Coordinate) rune {
	if c == Origin {
		return RuneOrigin
	}
	k, ok := g.cells[c]
	if !ok {
		return RuneUnknown
	}
	switch k {
	case Room:
		return RuneRoom
	case Door:
		if g.Is(c.Add(North), Room) {
			return RuneDoorNS
		}
		return RuneDoorEW
	default:
		return RuneWall
	}
}

// ParseRendering rebuilds a frozen Grid from the output of Grid.String.
// The single 'X' fixes the origin; every other cell is placed relative to it.
// '?' cells are left absent. Rows must all have the same width.
// Returns ErrBadRendering (wrapped with the offending position) otherwise.
// Complexity: O(W·H).
func ParseRendering(s string) (*Grid, error) {
	rows := strings.Split(strings.TrimRight(s, "\r\n"), lineSplitter)
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty rendering", ErrBadRendering)
	}

	ox, oy := -1, -1
	for y, row := range rows {
		row = strings.TrimRight(row, "\r")
		rows[y] = row
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadRendering, y, len(row), width)
		}
		if x := strings.IndexRune(row, RuneOrigin); x >= 0 {
			if ox >= 0 || strings.Count(row, string(RuneOrigin)) > 1 {
				return nil, fmt.Errorf("%w: more than one origin", ErrBadRendering)
			}
			ox, oy = x, y
		}
	}
	if ox < 0 {
		return nil, fmt.Errorf("%w: no origin", ErrBadRendering)
	}

	g := &Grid{cells: make(map[Coordinate]TerrainKind, width*len(rows))}
	for y, row := range rows {
		for x, r := range row {
			c := Coordinate{X: x - ox, Y: y - oy}
			switch r {
			case RuneWall:
				g.cells[c] = Wall
			case RuneRoom, RuneOrigin:
				g.cells[c] = Room
			case RuneDoorNS, RuneDoorEW:
				g.cells[c] = Door
			case RuneUnknown:
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrBadRendering, r, y, x)
			}
		}
	}
	g.boundary = Boundary{MinX: -ox, MaxX: width - 1 - ox, MinY: -oy, MaxY: len(rows) - 1 - oy}
	g.frozen = true

	return g, nil
}
