// Package pointgen - deterministic random streams for point generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical point sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use StreamSeed to derive independent seeds for parallel workers or runs.
package pointgen

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// StreamSeed mixes a parent seed and a stream identifier into a new seed,
// e.g. one stream per (size, run) of a benchmark.
//
// A SplitMix64 finalizer removes correlation between neighbouring streams.
// parent==0 is treated as defaultSeed, matching NewRand.
//
// Complexity: O(1).
func StreamSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = defaultSeed
	}
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
