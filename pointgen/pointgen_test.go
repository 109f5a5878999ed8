package pointgen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/closestpair/closest"
	"github.com/katalvlaran/closestpair/pointgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistinct_Invariants checks count, distinctness, integrality and bounds.
func TestDistinct_Invariants(t *testing.T) {
	opts := pointgen.DefaultOptions()
	opts.Seed = 42

	pts, err := pointgen.Distinct(5000, opts)
	require.NoError(t, err)
	require.Len(t, pts, 5000)

	seen := make(map[closest.Point]bool, len(pts))
	for _, p := range pts {
		assert.False(t, seen[p], "duplicate point %v", p)
		seen[p] = true
		assert.Equal(t, float64(int(p.X)), p.X, "x must be integral")
		assert.Equal(t, float64(int(p.Y)), p.Y, "y must be integral")
		assert.True(t, p.X >= 0 && p.X <= 32767 && p.Y >= 0 && p.Y <= 32767, "out of range: %v", p)
	}
}

// TestDistinct_SeedDeterminism requires identical output for identical seeds
// and different output for different seeds.
func TestDistinct_SeedDeterminism(t *testing.T) {
	opts := pointgen.Options{Min: -100, Max: 100, Seed: 7}

	a, err := pointgen.Distinct(300, opts)
	require.NoError(t, err)
	b, err := pointgen.Distinct(300, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	opts.Seed = 8
	c, err := pointgen.Distinct(300, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestDistinct_ZeroSeedIsDefault verifies seed 0 maps onto the default stream.
func TestDistinct_ZeroSeedIsDefault(t *testing.T) {
	a, err := pointgen.Distinct(50, pointgen.Options{Max: 1000, Seed: 0})
	require.NoError(t, err)
	b, err := pointgen.Distinct(50, pointgen.Options{Max: 1000, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestDistinct_FullLattice fills a 4×4 lattice completely through the
// permutation path.
func TestDistinct_FullLattice(t *testing.T) {
	pts, err := pointgen.Distinct(16, pointgen.Options{Min: 1, Max: 4, Seed: 3})
	require.NoError(t, err)

	seen := make(map[closest.Point]bool)
	for _, p := range pts {
		seen[p] = true
	}
	assert.Len(t, seen, 16)
}

// TestDistinct_Errors covers every sentinel.
func TestDistinct_Errors(t *testing.T) {
	_, err := pointgen.Distinct(-1, pointgen.DefaultOptions())
	assert.ErrorIs(t, err, pointgen.ErrNegativeCount)

	_, err = pointgen.Distinct(1, pointgen.Options{Min: 5, Max: 4})
	assert.ErrorIs(t, err, pointgen.ErrBadRange)

	_, err = pointgen.Distinct(10, pointgen.Options{Min: 0, Max: 2})
	assert.ErrorIs(t, err, pointgen.ErrRangeTooSmall)
}

// TestDistinct_Empty returns an empty, non-nil slice.
func TestDistinct_Empty(t *testing.T) {
	pts, err := pointgen.Distinct(0, pointgen.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, pts)
}

// TestStreamSeed_Streams checks that streams differ from each other and are stable.
func TestStreamSeed_Streams(t *testing.T) {
	assert.Equal(t, pointgen.StreamSeed(9, 1), pointgen.StreamSeed(9, 1))
	assert.NotEqual(t, pointgen.StreamSeed(9, 1), pointgen.StreamSeed(9, 2))
	assert.NotEqual(t, pointgen.StreamSeed(9, 1), pointgen.StreamSeed(10, 1))
	assert.Equal(t, pointgen.StreamSeed(0, 5), pointgen.StreamSeed(1, 5))
}

// TestDistinct_WideRanges draws from ranges at and beyond 2³² per axis,
// where the lattice size no longer fits in 64 bits.
func TestDistinct_WideRanges(t *testing.T) {
	for _, opts := range []pointgen.Options{
		{Min: 0, Max: 1<<32 - 1, Seed: 4},
		{Min: -(1 << 61), Max: 1 << 61, Seed: 4},
		{Min: math.MinInt64, Max: -2, Seed: 4},
	} {
		pts, err := pointgen.Distinct(50, opts)
		require.NoError(t, err, "range [%d,%d]", opts.Min, opts.Max)
		require.Len(t, pts, 50)
		for _, p := range pts {
			assert.True(t, p.X >= float64(opts.Min) && p.X <= float64(opts.Max), "x out of range: %v", p)
			assert.True(t, p.Y >= float64(opts.Min) && p.Y <= float64(opts.Max), "y out of range: %v", p)
		}
	}
}

// TestDistinct_RangeTooLarge rejects spans that do not fit in an int64.
func TestDistinct_RangeTooLarge(t *testing.T) {
	for _, r := range [][2]int{
		{-(1 << 62), 1 << 62},
		{math.MinInt64, math.MaxInt64},
		{math.MinInt64, -1},
		{-1, math.MaxInt64},
	} {
		_, err := pointgen.Distinct(2, pointgen.Options{Min: r[0], Max: r[1]})
		assert.ErrorIs(t, err, pointgen.ErrRangeTooLarge, "range %v", r)
	}
}

// TestCapacity covers small lattices, saturation at 2³² per axis and errors.
func TestCapacity(t *testing.T) {
	got, err := pointgen.Capacity(1, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), got)

	got, err = pointgen.Capacity(0, 1<<32-2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<32-1)*uint64(1<<32-1), got)

	got, err = pointgen.Capacity(0, 1<<32-1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)

	_, err = pointgen.Capacity(3, 2)
	assert.ErrorIs(t, err, pointgen.ErrBadRange)
	_, err = pointgen.Capacity(math.MinInt64, math.MaxInt64)
	assert.ErrorIs(t, err, pointgen.ErrRangeTooLarge)
}
