package gridgraph

import "errors"

var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrNotFinalized indicates the grid has not been through FillWalls yet.
	ErrNotFinalized = errors.New("gridgraph: grid walls not filled")
	// ErrNotRoom indicates a neighbor query on a coordinate that is not a room.
	ErrNotRoom = errors.New("gridgraph: coordinate is not a room")
)
