package bench

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/closestpair/pointgen"
)

// Algorithm names understood by the default finder set.
const (
	AlgBruteForce       = "brute"
	AlgDivideAndConquer = "dnc"
)

// Sentinel errors for benchmark runs.
var (
	// ErrInvalidConfig indicates an invalid benchmark configuration.
	ErrInvalidConfig = errors.New("bench: invalid configuration")

	// ErrUnknownAlgorithm indicates an algorithm name without a finder.
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

	// ErrMismatch indicates two algorithms reported different minimum distances.
	ErrMismatch = errors.New("bench: algorithms disagree on the minimum distance")

	// ErrFinderFailed indicates a finder returned an error.
	ErrFinderFailed = errors.New("bench: finder failed")
)

// Config holds benchmark configuration.
//
// Use DefaultConfig() for the reference setup (sizes 10,000..55,000 step
// 5,000, ten runs per size, coordinates in [0, 32767]) and override fields
// as needed.
type Config struct {
	// Sizes lists the point counts to measure, in order. Each must be ≥ 2.
	Sizes []int `mapstructure:"sizes" yaml:"sizes" json:"sizes"`

	// Runs is the number of point sets generated per size.
	Runs int `mapstructure:"runs" yaml:"runs" json:"runs"`

	// CoordMin and CoordMax bound both coordinates (inclusive).
	CoordMin int `mapstructure:"coord_min" yaml:"coord_min" json:"coord_min"`
	CoordMax int `mapstructure:"coord_max" yaml:"coord_max" json:"coord_max"`

	// Seed drives point generation; 0 selects the pointgen default.
	Seed int64 `mapstructure:"seed" yaml:"seed" json:"seed"`

	// Algorithms names the finders to time, in report column order.
	Algorithms []string `mapstructure:"algorithms" yaml:"algorithms" json:"algorithms"`

	// Verify cross-checks distances between algorithms on every run.
	Verify bool `mapstructure:"verify" yaml:"verify" json:"verify"`

	// Parallel enables concurrent halves in divide-and-conquer.
	Parallel bool `mapstructure:"parallel" yaml:"parallel" json:"parallel"`
}

// DefaultConfig returns the reference benchmark configuration. Never nil.
func DefaultConfig() *Config {
	return &Config{
		Sizes:      SizeRange(10_000, 55_000, 5_000),
		Runs:       10,
		CoordMin:   0,
		CoordMax:   32_767,
		Seed:       0,
		Algorithms: []string{AlgBruteForce, AlgDivideAndConquer},
		Verify:     false,
		Parallel:   false,
	}
}

// SizeRange returns start, start+step, … up to and including end.
// It returns nil when step ≤ 0 or start > end.
func SizeRange(start, end, step int) []int {
	if step <= 0 || start > end {
		return nil
	}
	sizes := make([]int, 0, (end-start)/step+1)
	for n := start; n <= end; n += step {
		sizes = append(sizes, n)
	}
	return sizes
}

// Validate checks every field; the error wraps ErrInvalidConfig and names
// the offending field.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: sizes must not be empty", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < 2 {
			return fmt.Errorf("%w: size %d is below 2", ErrInvalidConfig, n)
		}
	}
	if c.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive", ErrInvalidConfig)
	}
	if c.CoordMin > c.CoordMax {
		return fmt.Errorf("%w: coord_min %d exceeds coord_max %d", ErrInvalidConfig, c.CoordMin, c.CoordMax)
	}
	capacity, err := pointgen.Capacity(c.CoordMin, c.CoordMax)
	if err != nil {
		return fmt.Errorf("%w: range [%d,%d]: %w", ErrInvalidConfig, c.CoordMin, c.CoordMax, err)
	}
	if uint64(slices.Max(c.Sizes)) > capacity {
		return fmt.Errorf("%w: range [%d,%d] cannot hold %d distinct points",
			ErrInvalidConfig, c.CoordMin, c.CoordMax, slices.Max(c.Sizes))
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: algorithms must not be empty", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Algorithms))
	for _, a := range c.Algorithms {
		if seen[a] {
			return fmt.Errorf("%w: algorithm %q listed twice", ErrInvalidConfig, a)
		}
		seen[a] = true
	}
	return nil
}
