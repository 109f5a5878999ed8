package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/closestpair/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		configPath  string
		format      string
		metricsFile string
	)

	def := bench.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark brute force against divide and conquer",
		Long: `Time every configured algorithm on freshly generated random point sets,
several runs per size, and print the average duration per size.

Configuration is read from --config (YAML or JSON), then CLOSESTPAIR_*
environment variables, then flags; later sources win.

Examples:
  closestpair bench
  closestpair bench --sizes 1000,2000,4000 --runs 5 --verify
  closestpair bench --config bench.yaml --format json --metrics-file bench.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("invalid --format %q: want table or json", format)
			}

			cfg, err := loadBenchConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			opts := []bench.Option{bench.WithLogger(a.logger)}
			reg := prometheus.NewRegistry()
			if metricsFile != "" {
				m, err := bench.NewMetrics(reg)
				if err != nil {
					return err
				}
				opts = append(opts, bench.WithMetrics(m))
			}

			runner, err := bench.NewRunner(cfg, opts...)
			if err != nil {
				return err
			}
			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics %s: %w", metricsFile, err)
				}
				a.logger.Info("metrics written", "path", metricsFile)
			}

			if format == "json" {
				return bench.WriteJSON(cmd.OutOrStdout(), report)
			}
			return bench.WriteTable(cmd.OutOrStdout(), report)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "Config file (.yaml, .yml or .json)")
	f.StringVar(&format, "format", "table", "Report format: table or json")
	f.StringVar(&metricsFile, "metrics-file", "", "Write Prometheus text exposition to this file")
	f.IntSlice("sizes", def.Sizes, "Point counts to benchmark")
	f.Int("runs", def.Runs, "Runs (fresh point sets) per size")
	f.Int("coord-min", def.CoordMin, "Minimum coordinate (inclusive)")
	f.Int("coord-max", def.CoordMax, "Maximum coordinate (inclusive)")
	f.Int64("seed", def.Seed, "RNG seed (0 = default seed)")
	f.StringSlice("algorithms", def.Algorithms, "Algorithms to time: brute, dnc")
	f.Bool("verify", def.Verify, "Cross-check distances between algorithms on every run")
	f.Bool("parallel", def.Parallel, "Solve large halves concurrently (dnc)")

	return cmd
}
