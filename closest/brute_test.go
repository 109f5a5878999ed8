package closest_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/closestpair/closest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBruteForce_TooFewPoints verifies that nil, empty and single-point
// inputs report that no pair exists.
func TestBruteForce_TooFewPoints(t *testing.T) {
	for _, pts := range [][]closest.Point{nil, {}, {{X: 3, Y: 4}}} {
		_, _, ok := closest.BruteForce(pts)
		assert.False(t, ok, "len=%d must not yield a pair", len(pts))
	}
}

// TestBruteForce_SixPoints checks the six-point set: (1,2)-(3,3) at √5 is
// closer than (2,8)-(4,6) at √8.
func TestBruteForce_SixPoints(t *testing.T) {
	pts := []closest.Point{{1, 2}, {3, 3}, {2, 8}, {8, 1}, {4, 6}, {7, 5}}

	i, j, ok := closest.BruteForce(pts)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	assert.InDelta(t, math.Sqrt(5), closest.PairDistance(pts, i, j), 1e-12)
}

// TestBruteForce_ThreePoints checks that (0,0) and (0,1) are reported as {0,2}.
func TestBruteForce_ThreePoints(t *testing.T) {
	pts := []closest.Point{{0, 0}, {10, 10}, {0, 1}}

	i, j, ok := closest.BruteForce(pts)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 2}, [2]int{i, j})
	assert.Equal(t, 1.0, closest.PairDistance(pts, i, j))
}

// TestBruteForce_TieKeepsFirstScanned builds a unit square where all four
// sides tie; the scan must keep (0,1), the first pair in (i,j) order.
func TestBruteForce_TieKeepsFirstScanned(t *testing.T) {
	pts := []closest.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	i, j, ok := closest.BruteForce(pts)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})
}

// TestBruteForce_Duplicates ensures identical coordinates at different indices
// yield a zero-distance pair of distinct indices.
func TestBruteForce_Duplicates(t *testing.T) {
	pts := []closest.Point{{5, 5}, {9, 1}, {2, 2}, {9, 1}}

	i, j, ok := closest.BruteForce(pts)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 3}, [2]int{i, j})
	assert.Zero(t, closest.PairDistance(pts, i, j))
}

// TestBruteForce_TwoPoints returns the only pair.
func TestBruteForce_TwoPoints(t *testing.T) {
	i, j, ok := closest.BruteForce([]closest.Point{{-1, -1}, {2, 3}})
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})
}

// TestDistance_Symmetric checks symmetry and the 3-4-5 triangle.
func TestDistance_Symmetric(t *testing.T) {
	a, b := closest.Point{X: 1, Y: 1}, closest.Point{X: 4, Y: 5}
	assert.Equal(t, 5.0, closest.Distance(a, b))
	assert.Equal(t, closest.Distance(a, b), closest.Distance(b, a))
	assert.Zero(t, closest.Distance(a, a))
}
