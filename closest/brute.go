package closest

import "math"

// BruteForce returns the indices of the closest pair in points by comparing
// every unordered pair exactly once.
//
// Pairs are scanned in (i, j) lexicographic order with i < j, and only a
// strictly smaller distance replaces the current best, so among equidistant
// pairs the first one scanned wins.
//
// ok is false when len(points) < 2.
//
// Time:   O(n²).
// Memory: O(1).
func BruteForce(points []Point) (i, j int, ok bool) {
	return exhaustive(len(points), func(a, b int) float64 {
		return Distance(points[a], points[b])
	})
}

// exhaustive runs the pairwise scan over n items whose pairwise distance is
// given by dist. It is shared by BruteForce and the recursion's base case.
func exhaustive(n int, dist func(a, b int) float64) (i, j int, ok bool) {
	if n < 2 {
		return 0, 0, false
	}

	best := math.Inf(1)
	i, j = 0, 1
	for a := 0; a < n-1; a++ {
		for b := a + 1; b < n; b++ {
			if d := dist(a, b); d < best {
				best = d
				i, j = a, b
			}
		}
	}
	return i, j, true
}
