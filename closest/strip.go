package closest

import "math"

// combine reconciles the best pairs of the two halves with the pairs that
// straddle the dividing line x = xStar.
//
// The strip holds every entry of py within δ of the line (strictly), still in
// y-order. Any pair closer than δ lies within StripLookahead positions of
// each other in that order, so each strip entry is only compared with its
// next StripLookahead successors.
//
// Time: O(n). Memory: O(n) for the strip.
func combine(py []entry, xStar float64, left, right candidate) candidate {
	delta := math.Min(left.dist, right.dist)

	strip := make([]entry, 0, len(py))
	for _, e := range py {
		if math.Abs(e.p.X-xStar) < delta {
			strip = append(strip, e)
		}
	}

	best := noCandidate
	for k := range strip {
		end := min(k+1+StripLookahead, len(strip))
		for m := k + 1; m < end; m++ {
			if d := Distance(strip[k].p, strip[m].p); d < best.dist {
				best = candidate{a: strip[k], b: strip[m], dist: d}
			}
		}
	}

	if best.dist < delta {
		return best
	}
	if left.dist <= right.dist {
		return left
	}
	return right
}
