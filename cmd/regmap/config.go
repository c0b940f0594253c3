package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/regmap/analysis"
)

// Environment variables read by loadConfig. Flags override them.
const (
	envFile      = "REGMAP_ENV_FILE"
	envInput     = "REGMAP_INPUT"
	envAlgorithm = "REGMAP_ALGORITHM"
	envRender    = "REGMAP_RENDER"
)

// config is the resolved command-line configuration.
type config struct {
	input     string // path, or "-" for stdin
	algorithm analysis.Algorithm
	render    bool
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadConfig resolves the configuration from lookup (the environment) and
// then args (the flags), so a flag always wins over its variable.
func loadConfig(args []string, lookup func(string) (string, bool), usage io.Writer) (config, error) {
	cfg := config{input: "-", algorithm: analysis.AlgorithmBFS}

	if v, ok := lookup(envInput); ok && v != "" {
		cfg.input = v
	}
	algName := cfg.algorithm.String()
	if v, ok := lookup(envAlgorithm); ok && v != "" {
		algName = v
	}
	if v, ok := lookup(envRender); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("%s=%q is not a boolean", envRender, v)
		}
		cfg.render = b
	}

	fset := flag.NewFlagSet("regmap", flag.ContinueOnError)
	fset.SetOutput(usage)
	fset.StringVar(&cfg.input, "input", cfg.input,
		"Path of the file holding the direction regex, or - for stdin.")
	fset.StringVar(&algName, "algorithm", algName,
		"Shortest-path engine: bfs or dijkstra.")
	fset.BoolVar(&cfg.render, "render", cfg.render,
		"If set, prints the finished map before the answers.")
	if err := fset.Parse(args); err != nil {
		return config{}, err
	}

	alg, err := analysis.ParseAlgorithm(algName)
	if err != nil {
		return config{}, err
	}
	cfg.algorithm = alg

	return cfg, nil
}
