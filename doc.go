// Package closestpair finds, generates and benchmarks closest pairs of points
// in the plane.
//
// 🚀 What is closestpair?
//
//	A small toolkit around one classic computational-geometry problem:
//		• Finders: exhaustive O(n²) scan and O(n log n) divide-and-conquer
//		• Generators: seeded, reproducible sets of distinct lattice points
//		• Point files: JSON and YAML readers/writers
//		• Benchmarks: average timings per size, verification, Prometheus metrics
//
// ✨ Why closestpair?
//
//   - Deterministic – the same seed yields the same points and the same pair
//   - Safe indices – duplicates never collapse a result onto one index
//   - Pure finders – no logging, no global state, no I/O in closest/
//
// Under the hood, everything is organized into subpackages:
//
//	closest/  — Point, BruteForce, DivideAndConquer, LocatePair
//	pointgen/ — deterministic random distinct point sets
//	pointio/  — JSON / YAML point files
//	bench/    — benchmark Config, Runner, Report and metrics
//	cmd/closestpair/ — CLI: find, gen and bench subcommands
//
// Quick start:
//
//	go get github.com/katalvlaran/closestpair
//	go run ./cmd/closestpair gen --n 10000 --output points.json
//	go run ./cmd/closestpair find --input points.json --algorithm both
//	go run ./cmd/closestpair bench --sizes 1000,2000,4000 --runs 5
package closestpair
