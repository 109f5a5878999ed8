package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/closestpair/pointgen"
	"github.com/katalvlaran/closestpair/pointio"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		n      int
		opts   = pointgen.DefaultOptions()
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate distinct random integer-coordinate points",
		Long: `Generate n pairwise-distinct points with integer coordinates drawn
uniformly from [min, max]². The same seed always yields the same points.

Examples:
  closestpair gen --n 1000 --seed 7 --output points.json
  closestpair gen --n 20 --min -10 --max 10 --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := pointgen.Distinct(n, opts)
			if err != nil {
				return err
			}
			a.logger.Info("points generated", "n", n, "seed", opts.Seed, "min", opts.Min, "max", opts.Max)

			if output != "" {
				if err := pointio.WriteFile(output, points); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				a.logger.Info("points written", "path", output)
				return nil
			}

			f, err := pointio.ParseFormat(format)
			if err != nil {
				return err
			}
			return pointio.Write(cmd.OutOrStdout(), points, f)
		},
	}

	cmd.Flags().IntVar(&n, "n", 1000, "Number of points")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "RNG seed (0 = default seed)")
	cmd.Flags().IntVar(&opts.Min, "min", opts.Min, "Minimum coordinate (inclusive)")
	cmd.Flags().IntVar(&opts.Max, "max", opts.Max, "Maximum coordinate (inclusive)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (.json, .yaml or .yml); stdout if empty")
	cmd.Flags().StringVar(&format, "format", "json", "Stdout format: json or yaml")

	return cmd
}
