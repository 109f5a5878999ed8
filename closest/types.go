package closest

import (
	"errors"
	"math"
)

// StripLookahead is how many following strip points (in y-order) each strip
// point is compared against during the combine step. It follows from the
// packing bound on a δ×2δ box and must not be tuned.
const StripLookahead = 15

// baseCaseSize is the largest subproblem solved by exhaustive scan.
const baseCaseSize = 3

// defaultParallelCutoff is the smallest subproblem whose halves are solved
// concurrently when Options.Parallel is set.
const defaultParallelCutoff = 4096

// Sentinel errors for closest-pair operations.
var (
	// ErrInsufficientInput indicates fewer than two points were supplied.
	ErrInsufficientInput = errors.New("closest: at least two points are required")

	// ErrInvariantViolation indicates the computed pair could not be mapped
	// back to two distinct input indices.
	ErrInvariantViolation = errors.New("closest: internal invariant violated")

	// ErrPairNotFound indicates a returned point has no matching input coordinates.
	ErrPairNotFound = errors.New("closest: pair coordinates not found")

	// ErrNoDistinctIndex indicates the second point only matches the first index.
	ErrNoDistinctIndex = errors.New("closest: no distinct second index")
)

// Point is an immutable 2-D point with finite coordinates.
// Two points are equal when their coordinates are equal.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PairDistance returns the distance between points[i] and points[j].
// It panics if i or j is out of range, like any slice access.
func PairDistance(points []Point, i, j int) float64 {
	return Distance(points[i], points[j])
}

// RecoveryMode selects how DivideAndConquer maps the closest pair found by
// the recursion back to indices of the caller's slice.
//
//   - RecoverByPosition — use the original positions carried through the
//     recursion, after checking they are distinct and hold the returned
//     coordinates.
//
//   - RecoverByLookup — scan the input for the first index holding the first
//     point, then for a different index holding the second point.
type RecoveryMode int

const (
	// RecoverByPosition returns the positions carried by the recursion. Default.
	RecoverByPosition RecoveryMode = iota

	// RecoverByLookup locates both points by coordinate equality in O(n).
	RecoverByLookup
)

// Options configures DivideAndConquer.
//
// Fields:
//   - Parallel       — solve the two halves of large subproblems concurrently.
//     Results are identical to a sequential run.
//   - ParallelCutoff — minimum subproblem size split across goroutines.
//     Zero (or negative) means the package default.
//   - Recovery       — index recovery strategy, see RecoveryMode.
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	Parallel       bool
	ParallelCutoff int
	Recovery       RecoveryMode
}

// DefaultOptions returns sequential recursion with position-based recovery.
func DefaultOptions() Options {
	return Options{
		Parallel:       false,
		ParallelCutoff: defaultParallelCutoff,
		Recovery:       RecoverByPosition,
	}
}

// entry is a point together with its index in the caller's slice.
type entry struct {
	p   Point
	idx int
}

// before reports whether e precedes o in the x-order used for splitting:
// by X, then by original index.
func (e entry) before(o entry) bool {
	if e.p.X != o.p.X {
		return e.p.X < o.p.X
	}
	return e.idx < o.idx
}

// candidate is a pair of entries and their distance.
type candidate struct {
	a, b entry
	dist float64
}

// noCandidate is the identity for min over candidates.
var noCandidate = candidate{dist: math.Inf(1)}
