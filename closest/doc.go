// Package closest finds the closest pair of points in the plane, i.e. the two
// points of a finite set with minimum Euclidean distance.
//
// 🚀 What is the closest-pair problem?
//
//	Given points p₀…pₙ₋₁ in ℝ², return indices i ≠ j minimizing ‖pᵢ − pⱼ‖.
//	It shows up in:
//	  • Collision detection & proximity alerts
//	  • Clustering seeds & duplicate detection
//	  • Computational-geometry pipelines (Delaunay, EMST)
//
// ✨ Two finders:
//   - BruteForce — exhaustive O(n²) scan. Ties keep the first pair in
//     (i, j) lexicographic order. Serves as oracle and baseline.
//   - DivideAndConquer — O(n log n) split / recurse / combine with a
//     δ-strip and a fixed 15-point lookahead per strip point.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/closestpair/closest"
//
//	pts := []closest.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 1}}
//
//	i, j, ok := closest.BruteForce(pts)          // 0, 2, true
//	i, j, err := closest.DivideAndConquer(pts, nil) // {0, 2} in some order
//
// Both finders are pure: no logging, no global state, no I/O. Duplicate
// coordinates at distinct indices are valid input; the returned indices are
// always distinct.
//
// Performance:
//
//   - BruteForce:       Time O(n²),       Memory O(1)
//   - DivideAndConquer: Time O(n log n),  Memory O(n) per recursion level
//
// Errors:
//
//   - ErrInsufficientInput  — fewer than two points (DivideAndConquer only;
//     BruteForce reports ok=false).
//   - ErrInvariantViolation — index recovery could not map the computed pair
//     back onto the input. Indicates a bug, never a user error.
package closest
