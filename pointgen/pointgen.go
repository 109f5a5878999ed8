package pointgen

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/closestpair/closest"
)

// Sentinel errors for point generation.
var (
	// ErrNegativeCount indicates a negative number of points was requested.
	ErrNegativeCount = errors.New("pointgen: point count must be non-negative")

	// ErrBadRange indicates Min > Max.
	ErrBadRange = errors.New("pointgen: coordinate range is empty (min > max)")

	// ErrRangeTooSmall indicates the range holds fewer distinct lattice points than requested.
	ErrRangeTooSmall = errors.New("pointgen: coordinate range too small for the requested count")

	// ErrRangeTooLarge indicates Max-Min+1 does not fit in an int64.
	ErrRangeTooLarge = errors.New("pointgen: coordinate range too large")
)

// denseLimit bounds the lattice size that may be enumerated in full.
const denseLimit = 1 << 20

// Options configures Distinct.
//
//   - Min, Max — inclusive bounds for both coordinates.
//   - Seed     — RNG seed; 0 selects the package default.
type Options struct {
	Min  int
	Max  int
	Seed int64
}

// DefaultOptions returns coordinates in [0, 32767] and the default seed.
func DefaultOptions() Options {
	return Options{Min: 0, Max: 32767, Seed: 0}
}

// Distinct returns n pairwise-distinct points with integer-valued coordinates
// drawn uniformly from [opts.Min, opts.Max]².
//
// Complexity: O(n) expected time and memory.
func Distinct(n int, opts Options) ([]closest.Point, error) {
	return DistinctFrom(NewRand(opts.Seed), n, opts.Min, opts.Max)
}

// DistinctFrom is Distinct driven by a caller-owned rng.
// Points are returned in generation order.
//
// Sparse requests use rejection sampling over a set of seen points; when the
// request covers more than half of a small lattice, a partial permutation of
// the lattice is drawn instead so generation always terminates quickly.
func DistinctFrom(rng *rand.Rand, n, lo, hi int) ([]closest.Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	span, err := spanOf(lo, hi)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	total := capacity(span)
	if uint64(n) > total {
		return nil, ErrRangeTooSmall
	}

	if total <= denseLimit && uint64(n)*2 > total {
		return fromLattice(rng, n, lo, int(span)), nil
	}

	points := make([]closest.Point, 0, n)
	seen := make(map[closest.Point]struct{}, n)
	for len(points) < n {
		p := closest.Point{
			X: float64(lo + int(rng.Int63n(span))),
			Y: float64(lo + int(rng.Int63n(span))),
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points, nil
}

// Capacity returns the number of distinct lattice points in [lo, hi]²,
// saturating at math.MaxUint64.
//
// Errors: ErrBadRange for lo > hi, ErrRangeTooLarge when hi-lo+1 does not fit
// in an int64.
func Capacity(lo, hi int) (uint64, error) {
	span, err := spanOf(lo, hi)
	if err != nil {
		return 0, err
	}
	return capacity(span), nil
}

// spanOf returns hi-lo+1 without overflowing.
func spanOf(lo, hi int) (int64, error) {
	if lo > hi {
		return 0, ErrBadRange
	}
	// Unsigned subtraction is exact for lo ≤ hi, whatever their signs.
	diff := uint64(hi) - uint64(lo)
	if diff >= math.MaxInt64 {
		return 0, ErrRangeTooLarge
	}
	return int64(diff) + 1, nil
}

// capacity returns span², saturating once span reaches 2³².
func capacity(span int64) uint64 {
	if span >= 1<<32 {
		return math.MaxUint64
	}
	return uint64(span) * uint64(span)
}

// fromLattice draws n cells of the span×span lattice without replacement.
func fromLattice(rng *rand.Rand, n, lo, span int) []closest.Point {
	perm := rng.Perm(span * span)
	points := make([]closest.Point, n)
	for k := 0; k < n; k++ {
		cell := perm[k]
		points[k] = closest.Point{
			X: float64(lo + cell%span),
			Y: float64(lo + cell/span),
		}
	}
	return points
}
