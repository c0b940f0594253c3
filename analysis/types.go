package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for analysis operations.
var (
	// ErrNilGraph is returned when no graph is supplied.
	ErrNilGraph = errors.New("analysis: graph is nil")

	// ErrUnknownAlgorithm is returned for an algorithm outside BFS and Dijkstra.
	ErrUnknownAlgorithm = errors.New("analysis: unknown algorithm")

	// ErrUnreachable is returned by Route for a room the origin cannot reach.
	ErrUnreachable = errors.New("analysis: room unreachable from origin")
)

// Threshold is the door count at or beyond which a room is counted as far.
const Threshold = 1000

// Algorithm selects the shortest-path engine used by Distances.
type Algorithm int

const (
	// AlgorithmBFS walks the unit-weight graph breadth first.
	AlgorithmBFS Algorithm = iota
	// AlgorithmDijkstra runs the binary-heap Dijkstra over unit-weight arcs.
	AlgorithmDijkstra
)

// String returns the lowercase name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmDijkstra:
		return "dijkstra"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "bfs" or "dijkstra" (any case) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return AlgorithmBFS, nil
	case "dijkstra":
		return AlgorithmDijkstra, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Options configures Distances.
type Options struct {
	// Ctx allows cancellation of long searches.
	Ctx context.Context
	// Algorithm picks the engine; AlgorithmBFS by default.
	Algorithm Algorithm

	err error
}

// Option configures Distances via functional arguments.
type Option func(*Options)

// DefaultOptions returns a background context and AlgorithmBFS.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Algorithm: AlgorithmBFS}
}

// WithAlgorithm selects the engine. An unknown value surfaces as
// ErrUnknownAlgorithm when Distances runs.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != AlgorithmBFS && a != AlgorithmDijkstra {
			o.err = fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
			return
		}
		o.Algorithm = a
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
