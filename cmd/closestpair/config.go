package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/closestpair/bench"
)

// envPrefix prefixes environment overrides, e.g. CLOSESTPAIR_RUNS=3.
const envPrefix = "CLOSESTPAIR"

// benchFlagKeys maps bench flags onto config keys.
var benchFlagKeys = map[string]string{
	"sizes":      "sizes",
	"runs":       "runs",
	"coord-min":  "coord_min",
	"coord-max":  "coord_max",
	"seed":       "seed",
	"algorithms": "algorithms",
	"verify":     "verify",
	"parallel":   "parallel",
}

// loadBenchConfig resolves the benchmark configuration.
// Precedence: changed flags > CLOSESTPAIR_* env vars > config file > defaults.
func loadBenchConfig(path string, flags *pflag.FlagSet) (*bench.Config, error) {
	v := viper.New()

	def := bench.DefaultConfig()
	v.SetDefault("sizes", def.Sizes)
	v.SetDefault("runs", def.Runs)
	v.SetDefault("coord_min", def.CoordMin)
	v.SetDefault("coord_max", def.CoordMax)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("algorithms", def.Algorithms)
	v.SetDefault("verify", def.Verify)
	v.SetDefault("parallel", def.Parallel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range benchFlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg bench.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
