package regmap

import (
	"fmt"

	"github.com/katalvlaran/regmap/analysis"
	"github.com/katalvlaran/regmap/builder"
	"github.com/katalvlaran/regmap/core"
	"github.com/katalvlaran/regmap/gridgraph"
)

// Report carries every product of one analysis run.
type Report struct {
	Grid      *core.Grid
	Graph     *gridgraph.GridGraph
	Distances *analysis.DistanceMap
	Summary   analysis.Summary
}

// Config groups the per-stage options of Analyze.
type Config struct {
	Builder  []builder.BuilderOption
	Analysis []analysis.Option
}

// Analyze builds the facility described by directions and measures it.
// Errors from any stage are returned unchanged apart from wrapping, so
// errors.Is works against builder, gridgraph and analysis sentinels.
func Analyze(directions string, cfg Config) (*Report, error) {
	g, err := builder.Build(directions, cfg.Builder...)
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.New(g)
	if err != nil {
		return nil, fmt.Errorf("regmap: %w", err)
	}
	dm, err := analysis.Distances(gg, cfg.Analysis...)
	if err != nil {
		return nil, fmt.Errorf("regmap: %w", err)
	}

	return &Report{Grid: g, Graph: gg, Distances: dm, Summary: analysis.Summarize(dm)}, nil
}

// Solve returns the door count to the furthest room and the number of rooms
// at least analysis.Threshold doors away.
func Solve(directions string) (furthest, farRooms int, err error) {
	r, err := Analyze(directions, Config{})
	if err != nil {
		return 0, 0, err
	}
	return r.Summary.MaxDistance, r.Summary.FarRooms, nil
}
