// boundedmate computes endgame metrics for one or more bounded
// infinite-chess scenarios: universe size, move counts, checkmates, and the
// Trap/Tempo/Mate fixpoint sets.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/relaychess/boundedmate/pkg/evaluate"
	"github.com/relaychess/boundedmate/pkg/scenario"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	pretty      = flag.Bool("pretty", false, "Pretty-print JSON output")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: boundedmate [options] scenario.json [scenario2.json ...]

boundedmate evaluates one or more bounded infinite-chess endgame scenarios
and prints their counts as JSON. A single scenario prints one object; more
than one prints a JSON array in input order.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	ctx := context.Background()
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	results, err := runAll(ctx, paths)
	if err != nil {
		logw.Errorf(ctx, "Evaluation failed: %v", err)
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	if len(results) == 1 {
		if err := enc.Encode(results[0]); err != nil {
			logw.Errorf(ctx, "Encoding output: %v", err)
			os.Exit(2)
		}
		return
	}
	if err := enc.Encode(results); err != nil {
		logw.Errorf(ctx, "Encoding output: %v", err)
		os.Exit(2)
	}
}

// runAll loads and evaluates every scenario path, concurrently (§5: "may be
// evaluated in parallel at the outer batch level"), preserving input order
// in the returned slice.
func runAll(ctx context.Context, paths []string) ([]envelope, error) {
	results := make([]envelope, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()

			spec, err := scenario.LoadFile(path)
			if err != nil {
				errs[i] = fmt.Errorf("%v: %w", path, err)
				return
			}

			res, err := evaluate.Scenario(ctx, spec)
			if err != nil {
				errs[i] = fmt.Errorf("%v: %w", path, err)
				return
			}

			logw.Debugf(ctx, "Evaluated %v: %v", path, res.Scenario)
			results[i] = toEnvelope(res)
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// envelope matches the §6 output shape: the echoed normalized scenario
// alongside its counts.
type envelope struct {
	Scenario scenario.Spec `json:"scenario"`
	Counts   countsJSON    `json:"counts"`
}

type countsJSON struct {
	UniverseStates   int `json:"universe_states"`
	BlackMovesIn     int `json:"black_moves_in"`
	BlackMovesEscape int `json:"black_moves_escape"`
	WhiteMovesIn     int `json:"white_moves_in"`
	WhiteMovesEscape int `json:"white_moves_escape"`
	Checkmates       int `json:"checkmates"`
	Trap             int `json:"trap"`
	Tempo            int `json:"tempo"`
	Mate             int `json:"mate"`
}

func toEnvelope(r evaluate.Result) envelope {
	c := r.Counts
	return envelope{
		Scenario: r.Scenario,
		Counts: countsJSON{
			UniverseStates:   c.UniverseStates,
			BlackMovesIn:     c.BlackMovesIn,
			BlackMovesEscape: c.BlackMovesEscape,
			WhiteMovesIn:     c.WhiteMovesIn,
			WhiteMovesEscape: c.WhiteMovesEscape,
			Checkmates:       c.Checkmates,
			Trap:             c.Trap,
			Tempo:            c.Tempo,
			Mate:             c.Mate,
		},
	}
}
