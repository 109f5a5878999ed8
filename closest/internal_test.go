package closest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCombine_TieFavoursLeft checks that equal half results keep the left pair.
func TestCombine_TieFavoursLeft(t *testing.T) {
	left := candidate{a: entry{Point{0, 0}, 0}, b: entry{Point{0, 2}, 1}, dist: 2}
	right := candidate{a: entry{Point{10, 0}, 2}, b: entry{Point{10, 2}, 3}, dist: 2}
	py := []entry{left.a, right.a, left.b, right.b}

	got := combine(py, 0, left, right)
	assert.Equal(t, left, got)
}

// TestCombine_StripMustBeStrictlyCloser keeps the half result when the strip
// only matches δ.
func TestCombine_StripMustBeStrictlyCloser(t *testing.T) {
	left := candidate{a: entry{Point{-5, 0}, 0}, b: entry{Point{-5, 1}, 1}, dist: 1}
	right := candidate{a: entry{Point{5, 0}, 2}, b: entry{Point{5, 3}, 3}, dist: 3}
	// across the line x=0: (−0.5,10) and (0.5,10) are exactly 1 apart
	cross := []entry{{Point{-0.5, 10}, 4}, {Point{0.5, 10}, 5}}
	py := []entry{left.a, right.a, left.b, right.b, cross[0], cross[1]}

	got := combine(py, 0, left, right)
	assert.Equal(t, left, got)

	cross[1].p.X = 0.25 // now 0.75 apart
	py[5] = cross[1]
	got = combine(py, 0, left, right)
	assert.Equal(t, cross[0], got.a)
	assert.Equal(t, cross[1], got.b)
	assert.InDelta(t, 0.75, got.dist, 1e-12)
}

// TestCombine_StripIsOpen excludes points exactly δ away from the line.
func TestCombine_StripIsOpen(t *testing.T) {
	left := candidate{a: entry{Point{-9, 0}, 0}, b: entry{Point{-9, 2}, 1}, dist: 2}
	right := candidate{a: entry{Point{9, 0}, 2}, b: entry{Point{9, 2}, 3}, dist: 2}
	// both on the strip boundary |x − 0| == δ, 0.5 apart vertically
	py := []entry{left.a, right.a, left.b, right.b, {Point{-2, 20}, 4}, {Point{-2, 20.5}, 5}}

	got := combine(py, 0, left, right)
	assert.Equal(t, left, got)
}

// TestCombine_LookaheadWindow places the partner exactly StripLookahead
// positions later (found) and one further (not found).
func TestCombine_LookaheadWindow(t *testing.T) {
	inf := candidate{dist: math.Inf(1)}
	half := candidate{a: entry{Point{-50, 0}, 900}, b: entry{Point{-50, 10}, 901}, dist: 10}

	build := func(gap int) []entry {
		py := []entry{{Point{0, 0}, 0}}
		for k := 1; k < gap; k++ {
			// fillers spread far apart so they never pair up
			py = append(py, entry{Point{float64(k%2)*4 - 2, float64(k) * 20}, k})
		}
		py = append(py, entry{Point{0.1, 0}, gap})
		return py
	}

	got := combine(build(StripLookahead), 0, half, inf)
	assert.InDelta(t, 0.1, got.dist, 1e-12, "partner at +%d must be compared", StripLookahead)

	got = combine(build(StripLookahead+1), 0, half, inf)
	assert.Equal(t, half, got, "partner at +%d is outside the window", StripLookahead+1)
}

// TestSplitByX_ConsistentViews checks that both halves of py hold exactly the
// entries of qx and rx, in y-order, even with equal X values.
func TestSplitByX_ConsistentViews(t *testing.T) {
	px := []entry{
		{Point{1, 5}, 0}, {Point{2, 1}, 3}, {Point{2, 1}, 4}, {Point{2, 9}, 6},
		{Point{2, 0}, 7}, {Point{3, 3}, 1}, {Point{4, 4}, 2}, {Point{5, 2}, 5},
	}
	py := []entry{
		{Point{2, 0}, 7}, {Point{2, 1}, 3}, {Point{2, 1}, 4}, {Point{5, 2}, 5},
		{Point{3, 3}, 1}, {Point{4, 4}, 2}, {Point{1, 5}, 0}, {Point{2, 9}, 6},
	}
	mid := len(px) / 2

	qy, ry := splitByX(py, px[mid-1], mid)
	require.Len(t, qy, mid)
	require.Len(t, ry, len(px)-mid)
	assert.ElementsMatch(t, px[:mid], qy)
	assert.ElementsMatch(t, px[mid:], ry)
	for k := 1; k < len(qy); k++ {
		assert.LessOrEqual(t, qy[k-1].p.Y, qy[k].p.Y)
	}
}

// TestRecoverIndices_PositionChecks feeds corrupted candidates to the
// position-based recovery.
func TestRecoverIndices_PositionChecks(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 2}}

	i, j, err := recoverIndices(pts, candidate{a: entry{Point{2, 2}, 2}, b: entry{Point{0, 0}, 0}}, RecoverByPosition)
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 0}, [2]int{i, j})

	_, _, err = recoverIndices(pts, candidate{a: entry{Point{1, 1}, 1}, b: entry{Point{1, 1}, 1}}, RecoverByPosition)
	assert.ErrorIs(t, err, ErrInvariantViolation)

	_, _, err = recoverIndices(pts, candidate{a: entry{Point{1, 1}, 1}, b: entry{Point{9, 9}, 7}}, RecoverByPosition)
	assert.ErrorIs(t, err, ErrInvariantViolation)

	_, _, err = recoverIndices(pts, candidate{a: entry{Point{1, 1}, 0}, b: entry{Point{2, 2}, 2}}, RecoverByPosition)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

// TestExhaustive_InfiniteDistances keeps a valid pair even if every distance
// overflows to +Inf.
func TestExhaustive_InfiniteDistances(t *testing.T) {
	i, j, ok := exhaustive(3, func(a, b int) float64 { return math.Inf(1) })
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})
}
