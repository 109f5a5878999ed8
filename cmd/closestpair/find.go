package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/closestpair/bench"
	"github.com/katalvlaran/closestpair/closest"
	"github.com/katalvlaran/closestpair/pointio"
)

// findResult is one line of `find` output.
type findResult struct {
	Algorithm string        `json:"algorithm"`
	I         int           `json:"i"`
	J         int           `json:"j"`
	P         closest.Point `json:"p"`
	Q         closest.Point `json:"q"`
	Distance  float64       `json:"distance"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

func newFindCmd(a *app) *cobra.Command {
	var (
		input     string
		algorithm string
		parallel  bool
		recovery  string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the closest pair in a point file",
		Long: `Read a JSON or YAML point file and print the indices, coordinates and
distance of its closest pair.

Examples:
  closestpair find --input points.json
  closestpair find --input points.yaml --algorithm both --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseRecovery(recovery)
			if err != nil {
				return err
			}
			names, err := parseAlgorithmChoice(algorithm)
			if err != nil {
				return err
			}
			if output != "text" && output != "json" {
				return fmt.Errorf("invalid --output %q: want text or json", output)
			}

			points, err := pointio.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read %s: %w", input, err)
			}
			a.logger.Info("points loaded", "path", input, "n", len(points))

			opts := closest.DefaultOptions()
			opts.Parallel = parallel
			opts.Recovery = mode
			finders := map[string]bench.Finder{
				bench.AlgBruteForce:       bench.BruteForceFinder,
				bench.AlgDivideAndConquer: bench.DivideAndConquerFinder(opts),
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, name := range names {
				start := time.Now()
				i, j, err := finders[name](points)
				elapsed := time.Since(start)
				if err != nil {
					if errors.Is(err, closest.ErrInvariantViolation) {
						a.logger.Error("index recovery failed", "algorithm", name, "error", err)
					}
					return fmt.Errorf("%s: %w", name, err)
				}

				res := findResult{
					Algorithm: name,
					I:         i,
					J:         j,
					P:         points[i],
					Q:         points[j],
					Distance:  closest.PairDistance(points, i, j),
					Elapsed:   elapsed,
				}
				a.logger.Debug("pair found", "algorithm", name, "i", i, "j", j, "elapsed", elapsed)

				if output == "json" {
					if err := enc.Encode(res); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(out, "%s\ti=%d j=%d p=(%g, %g) q=(%g, %g) distance=%g\n",
					res.Algorithm, res.I, res.J, res.P.X, res.P.Y, res.Q.X, res.Q.Y, res.Distance)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Point file (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", bench.AlgDivideAndConquer,
		"Algorithm: dnc, brute or both")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Solve large halves concurrently (dnc)")
	cmd.Flags().StringVar(&recovery, "recovery", "position", "Index recovery (dnc): position or lookup")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// parseAlgorithmChoice expands "both" into the two finder names.
func parseAlgorithmChoice(s string) ([]string, error) {
	switch s {
	case bench.AlgBruteForce, bench.AlgDivideAndConquer:
		return []string{s}, nil
	case "both":
		return []string{bench.AlgBruteForce, bench.AlgDivideAndConquer}, nil
	default:
		return nil, fmt.Errorf("invalid --algorithm %q: want dnc, brute or both", s)
	}
}

func parseRecovery(s string) (closest.RecoveryMode, error) {
	switch s {
	case "position":
		return closest.RecoverByPosition, nil
	case "lookup":
		return closest.RecoverByLookup, nil
	default:
		return 0, fmt.Errorf("invalid --recovery %q: want position or lookup", s)
	}
}
