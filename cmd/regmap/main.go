// Command regmap reads a facility direction regex and prints the number of
// doors to the furthest room and the number of rooms at least 1000 doors away.
//
// Usage:
//
//	regmap [-input path|-] [-algorithm bfs|dijkstra] [-render]
//
// Each flag falls back to an environment variable (REGMAP_INPUT,
// REGMAP_ALGORITHM, REGMAP_RENDER), which may also come from the .env file
// named by REGMAP_ENV_FILE (default ".env").
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/regmap"
	"github.com/katalvlaran/regmap/analysis"
	"github.com/katalvlaran/regmap/core"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("regmap: ")
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	path := ".env"
	if v, ok := os.LookupEnv(envFile); ok && v != "" {
		path = v
	}
	if err := loadEnvFile(path); err != nil {
		log.Print(err)
		return 1
	}
	cfg, err := loadConfig(args, os.LookupEnv, os.Stderr)
	if err != nil {
		log.Print(err)
		return 2
	}

	directions, err := readInput(cfg.input, stdin)
	if err != nil {
		log.Print(err)
		return 1
	}
	r, err := regmap.Analyze(directions, regmap.Config{
		Analysis: []analysis.Option{analysis.WithAlgorithm(cfg.algorithm)},
	})
	if err != nil {
		log.Print(err)
		return 1
	}

	if cfg.render {
		if err := core.Render(stdout, r.Grid); err != nil {
			log.Print(err)
			return 1
		}
	}
	fmt.Fprintln(stdout, r.Summary.MaxDistance)
	fmt.Fprintln(stdout, r.Summary.FarRooms)
	return 0
}

// readInput returns the contents of path, or of stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
