// Package bench measures the closest-pair finders on random point sets.
//
// What:
//
//   - For each size n in Config.Sizes, Config.Runs fresh sets of n distinct
//     integer-coordinate points are generated (package pointgen).
//   - Every configured algorithm is timed on the same set; per-size averages
//     are collected into a Report.
//   - Optionally (Config.Verify) the distances reported by all algorithms are
//     cross-checked, turning the driver into a randomized oracle test.
//
// Why:
//
//   - Empirical running time of O(n²) vs O(n log n) side by side.
//   - Regression guard for the divide-and-conquer implementation.
//
// Output:
//
//   - WriteTable prints the per-size averages in milliseconds.
//   - WriteJSON emits the full Report.
//   - Metrics exports durations as a Prometheus histogram.
//
// Errors:
//
//   - ErrInvalidConfig:    Config.Validate failed.
//   - ErrUnknownAlgorithm: an algorithm name has no registered finder.
//   - ErrMismatch:         Verify found two algorithms disagreeing on the distance.
//   - ErrFinderFailed:     a finder returned an error.
package bench
