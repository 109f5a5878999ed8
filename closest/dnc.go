package closest

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"
)

// DivideAndConquer returns two distinct indices into points whose points are
// at minimum Euclidean distance.
//
// Algorithm Outline:
//  1. Build Px (sorted by X) and Py (sorted by Y). Ties are ordered by input
//     index, so both orders are total and the result is deterministic.
//  2. Recurse on (Px, Py):
//     n ≤ 3  — exhaustive scan, same tie-break as BruteForce.
//     Divide — split Px by count at n/2 into Qx | Rx; stream Py into Qy | Ry
//     keeping y-order, deciding sides by position in the x-order.
//     Conquer — recurse on (Qx, Qy) and (Rx, Ry).
//     Combine — δ = min(left, right); collect the strip |x − x*| < δ around
//     x* = last X of Qx from Py; compare each strip point with the next
//     StripLookahead points. A strip pair strictly closer than δ wins,
//     otherwise the closer half wins (ties go left).
//  3. Map the winning pair back to input indices once, per opts.Recovery.
//
// A nil opts means DefaultOptions().
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n) per recursion level
//
// Errors:
//   - ErrInsufficientInput  — len(points) < 2.
//   - ErrInvariantViolation — index recovery failed (a bug, never user input).
func DivideAndConquer(points []Point, opts *Options) (i, j int, err error) {
	n := len(points)
	if n < 2 {
		return 0, 0, ErrInsufficientInput
	}

	o := DefaultOptions()
	if opts != nil {
		o.Parallel = opts.Parallel
		if opts.ParallelCutoff > 0 {
			o.ParallelCutoff = opts.ParallelCutoff
		}
		o.Recovery = opts.Recovery
	}

	px := make([]entry, n)
	for k, p := range points {
		px[k] = entry{p: p, idx: k}
	}
	py := slices.Clone(px)
	slices.SortFunc(px, compareX)
	slices.SortFunc(py, compareY)

	s := solver{parallel: o.Parallel, cutoff: o.ParallelCutoff}
	best := s.solve(px, py)

	return recoverIndices(points, best, o.Recovery)
}

// solver carries the read-only recursion settings.
type solver struct {
	parallel bool
	cutoff   int
}

// solve returns the closest pair among the entries of px. py must hold the
// same entries sorted by Y.
func (s solver) solve(px, py []entry) candidate {
	n := len(px)
	if n <= baseCaseSize {
		a, b, _ := exhaustive(n, func(a, b int) float64 {
			return Distance(px[a].p, px[b].p)
		})
		return candidate{a: px[a], b: px[b], dist: Distance(px[a].p, px[b].p)}
	}

	mid := n / 2
	qx, rx := px[:mid], px[mid:]
	qy, ry := splitByX(py, qx[mid-1], mid)

	var left, right candidate
	if s.parallel && n >= s.cutoff {
		// errgroup serves as fork/join here: the left half runs on its own
		// goroutine, the right half on this one. Halves cannot fail, so
		// Wait always returns nil.
		var g errgroup.Group
		g.Go(func() error {
			left = s.solve(qx, qy)
			return nil
		})
		right = s.solve(rx, ry)
		_ = g.Wait()
	} else {
		left = s.solve(qx, qy)
		right = s.solve(rx, ry)
	}

	return combine(py, qx[mid-1].p.X, left, right)
}

// splitByX partitions py into the entries at or before last in x-order and
// the rest, preserving y-order. leftLen is the expected size of the first part.
func splitByX(py []entry, last entry, leftLen int) (qy, ry []entry) {
	qy = make([]entry, 0, leftLen)
	ry = make([]entry, 0, len(py)-leftLen)
	for _, e := range py {
		if last.before(e) {
			ry = append(ry, e)
		} else {
			qy = append(qy, e)
		}
	}
	return qy, ry
}

func compareX(a, b entry) int {
	if c := cmp.Compare(a.p.X, b.p.X); c != 0 {
		return c
	}
	return cmp.Compare(a.idx, b.idx)
}

func compareY(a, b entry) int {
	if c := cmp.Compare(a.p.Y, b.p.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.idx, b.idx)
}
