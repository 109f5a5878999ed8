package closest

import (
	"fmt"
	"slices"
)

// recoverIndices maps the pair found by the recursion back to indices into
// points. It runs once per DivideAndConquer call.
func recoverIndices(points []Point, c candidate, mode RecoveryMode) (int, int, error) {
	if mode == RecoverByLookup {
		return LocatePair(points, c.a.p, c.b.p)
	}

	i, j := c.a.idx, c.b.idx
	n := len(points)
	if i == j || i < 0 || i >= n || j < 0 || j >= n {
		return 0, 0, fmt.Errorf("%w: positions %d and %d are not a distinct pair in [0,%d)",
			ErrInvariantViolation, i, j, n)
	}
	if points[i] != c.a.p || points[j] != c.b.p {
		return 0, 0, fmt.Errorf("%w: positions %d and %d do not hold %v and %v",
			ErrInvariantViolation, i, j, c.a.p, c.b.p)
	}
	return i, j, nil
}

// LocatePair returns the first index holding a and a different index holding
// b. Duplicate coordinates are allowed: when a == b, two distinct positions
// with those coordinates are required.
//
// Failures wrap ErrInvariantViolation together with ErrPairNotFound (a or b
// does not occur in points) or ErrNoDistinctIndex (b occurs only at the index
// chosen for a).
//
// Time: O(n).
func LocatePair(points []Point, a, b Point) (i, j int, err error) {
	i = slices.Index(points, a)
	if i < 0 {
		return 0, 0, fmt.Errorf("%w: %w: %v", ErrInvariantViolation, ErrPairNotFound, a)
	}

	for k, p := range points {
		if k != i && p == b {
			return i, k, nil
		}
	}

	if points[i] == b {
		return 0, 0, fmt.Errorf("%w: %w: %v only at index %d", ErrInvariantViolation, ErrNoDistinctIndex, b, i)
	}
	return 0, 0, fmt.Errorf("%w: %w: %v", ErrInvariantViolation, ErrPairNotFound, b)
}
