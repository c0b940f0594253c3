// Package core defines the central Coordinate, TerrainKind, Boundary and Grid
// types shared by every other regmap package.
//
// This file declares the value types, the sentinel errors and the NewGrid
// constructor. Grid methods live in grid.go; rendering lives in render.go.
//
// Errors:
//
//	ErrFrozen        - mutation attempted after FillWalls.
//	ErrUnknownKind   - a TerrainKind outside Room/Door/Wall was stored.
//	ErrBadRendering  - ParseRendering met a character it cannot classify.
package core

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core grid operations.
var (
	// ErrFrozen indicates a mutation on a grid whose walls were already filled.
	ErrFrozen = errors.New("core: grid is frozen")

	// ErrUnknownKind indicates an attempt to store a kind other than Room, Door or Wall.
	ErrUnknownKind = errors.New("core: unknown terrain kind")

	// ErrBadRendering indicates a textual rendering that cannot be parsed back.
	ErrBadRendering = errors.New("core: malformed rendering")
)

// Point is an integer pair on the unbounded facility plane.
// Y grows downward, matching the top-left origin of the rendered map.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Add returns p translated by q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied component-wise by k.
func (p Point[T]) Scale(k T) Point[T] {
	return Point[T]{X: p.X * k, Y: p.Y * k}
}

// Less orders points row-major: by Y first, then by X.
func (p Point[T]) Less(q Point[T]) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// String renders the point as "x,y".
func (p Point[T]) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Coordinate is the key type of every Grid.
type Coordinate = Point[int]

// Origin is the starting room of every facility.
var Origin = Coordinate{X: 0, Y: 0}

// Unit offsets of the four compass directions.
var (
	North = Coordinate{X: 0, Y: -1}
	South = Coordinate{X: 0, Y: 1}
	East  = Coordinate{X: 1, Y: 0}
	West  = Coordinate{X: -1, Y: 0}
)

// Compass lists the four directions in the order neighbors are probed.
var Compass = [4]Coordinate{North, East, South, West}

// TerrainKind classifies a coordinate. The zero value Unknown means "absent"
// and is never stored in a Grid.
type TerrainKind uint8

const (
	// Unknown is the classification of a coordinate the grid has no entry for.
	Unknown TerrainKind = iota
	// Room is a traversable cell.
	Room
	// Door connects two rooms along one axis.
	Door
	// Wall is every remaining cell inside the boundary.
	Wall
)

// String returns a lowercase name for k.
func (k TerrainKind) String() string {
	switch k {
	case Room:
		return "room"
	case Door:
		return "door"
	case Wall:
		return "wall"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("TerrainKind(%d)", uint8(k))
}

// Boundary is an inclusive axis-aligned rectangle.
type Boundary struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether c lies inside b.
func (b Boundary) Contains(c Coordinate) bool {
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}

// Width is the number of columns covered by b.
func (b Boundary) Width() int { return b.MaxX - b.MinX + 1 }

// Height is the number of rows covered by b.
func (b Boundary) Height() int { return b.MaxY - b.MinY + 1 }

// Pad returns b grown by n cells on every side.
func (b Boundary) Pad(n int) Boundary {
	return Boundary{MinX: b.MinX - n, MaxX: b.MaxX + n, MinY: b.MinY - n, MaxY: b.MaxY + n}
}

// Grid is the sparse coordinate → terrain mapping of one facility.
//
// A Grid is mutated only while it is being built. FillWalls classifies every
// remaining coordinate inside the padded boundary as Wall and freezes the grid;
// from then on it is read-only and may be shared by concurrent readers.
type Grid struct {
	cells    map[Coordinate]TerrainKind
	boundary Boundary
	frozen   bool
}

// NewGrid returns an unfrozen grid holding only the origin room.
// Complexity: O(1).
func NewGrid() *Grid {
	g := &Grid{cells: make(map[Coordinate]TerrainKind)}
	g.cells[Origin] = Room

	return g
}
