// Package: regmap/builder
//
// options.go: functional options and the internal builder configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Defaults: unlimited nesting, no hook, anchors optional.

package builder

import "github.com/katalvlaran/regmap/core"

// BuilderOption customizes Build by mutating a builderConfig before parsing.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by Build. Passed by value.
type builderConfig struct {
	maxNesting    int // 0 means unlimited
	strictAnchors bool
	onStep        func(door, room core.Coordinate)
}

// newBuilderConfig applies opts in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxNesting: 0,
		onStep:     func(_, _ core.Coordinate) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxNesting rejects inputs whose groups nest deeper than n with
// ErrNestingTooDeep. Panics if n < 1.
func WithMaxNesting(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxNesting(n<1)")
	}
	return func(c *builderConfig) {
		c.maxNesting = n
	}
}

// WithStrictAnchors requires the input, ignoring surrounding whitespace, to
// start with '^' and end with '$'.
func WithStrictAnchors() BuilderOption {
	return func(c *builderConfig) {
		c.strictAnchors = true
	}
}

// WithOnStep registers fn to run after every move with the door crossed and
// the room entered. Panics on nil.
func WithOnStep(fn func(door, room core.Coordinate)) BuilderOption {
	if fn == nil {
		panic("builder: WithOnStep(nil)")
	}
	return func(c *builderConfig) {
		c.onStep = fn
	}
}
