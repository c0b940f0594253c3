// Package core: Grid method implementations.
//
// Mutators (SetRoom, SetDoor, Set) are only legal before FillWalls; queries are
// legal at any time but callers outside the builder should only see frozen grids.

package core

import (
	"fmt"
	"sort"
)

// Set classifies c as kind, overwriting any previous classification.
// Returns ErrFrozen after FillWalls and ErrUnknownKind for Unknown or
// out-of-range kinds.
// Complexity: O(1) amortized.
func (g *Grid) Set(c Coordinate, kind TerrainKind) error {
	if g.frozen {
		return fmt.Errorf("%w: cannot set %v to %v", ErrFrozen, c, kind)
	}
	if kind != Room && kind != Door && kind != Wall {
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	g.cells[c] = kind

	return nil
}

// SetRoom marks c as a Room. Re-marking an existing room is a no-op.
func (g *Grid) SetRoom(c Coordinate) error { return g.Set(c, Room) }

// SetDoor marks c as a Door. Re-marking an existing door is a no-op.
func (g *Grid) SetDoor(c Coordinate) error { return g.Set(c, Door) }

// Kind returns the classification of c and whether the grid knows c at all.
// Complexity: O(1).
func (g *Grid) Kind(c Coordinate) (TerrainKind, bool) {
	k, ok := g.cells[c]

	return k, ok
}

// Is reports whether c is known and classified as kind.
func (g *Grid) Is(c Coordinate, kind TerrainKind) bool {
	k, ok := g.cells[c]

	return ok && k == kind
}

// Len returns the number of classified coordinates.
func (g *Grid) Len() int { return len(g.cells) }

// Frozen reports whether FillWalls has run.
func (g *Grid) Frozen() bool { return g.frozen }

// Boundary returns the padded boundary fixed by FillWalls, or the tight
// bounding rectangle of the known coordinates if the grid is not frozen yet.
func (g *Grid) Boundary() Boundary {
	if g.frozen {
		return g.boundary
	}
	return g.bounds()
}

// Count returns how many coordinates are classified as kind.
// Complexity: O(N).
func (g *Grid) Count(kind TerrainKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Coordinates returns every coordinate classified as kind, sorted row-major.
// Complexity: O(N log N).
func (g *Grid) Coordinates(kind TerrainKind) []Coordinate {
	out := make([]Coordinate, 0, len(g.cells))
	for c, k := range g.cells {
		if k == kind {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Each calls fn for every classified coordinate in unspecified order.
func (g *Grid) Each(fn func(c Coordinate, kind TerrainKind)) {
	for c, k := range g.cells {
		fn(c, k)
	}
}

// FillWalls computes the bounding rectangle of every known coordinate, grows it
// by one cell on each side, classifies every absent coordinate inside it as
// Wall, stores the padded rectangle as the grid boundary and freezes the grid.
//
// Calling FillWalls on a frozen grid changes nothing.
// Complexity: O(W·H) over the padded rectangle.
func (g *Grid) FillWalls() {
	if g.frozen {
		return
	}
	b := g.bounds().Pad(1)
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			c := Coordinate{X: x, Y: y}
			if _, ok := g.cells[c]; !ok {
				g.cells[c] = Wall
			}
		}
	}
	g.boundary = b
	g.frozen = true
}

// bounds returns the tight rectangle around every known coordinate.
// A grid always holds at least the origin, so the rectangle is never empty.
func (g *Grid) bounds() Boundary {
	b := Boundary{}
	first := true
	for c := range g.cells {
		if first {
			b = Boundary{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			first = false
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return b
}
