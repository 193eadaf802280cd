package poly

import (
	"math"

	"honnef.co/go/curve"
)

// DefaultEpsilon merges points closer than 0.001 mm and drops rings whose
// area falls below DefaultEpsilon². Matches the rounding-error tolerance
// conventionally used for millimeter geometry.
const DefaultEpsilon = 1e-3

// Repair performs one simplification pass over raw contours: consecutive
// near-duplicate points are merged, collinear points removed, and rings
// that end up with fewer than 3 points or with near-zero area are
// dropped. It returns the surviving rings; an empty result means the
// input was degenerate beyond repair.
//
// Repair is the single recovery attempt for degenerate glyph geometry.
// The pipeline is deterministic, so repeating it would reproduce the
// identical failure.
func Repair(rings []Ring, eps float64) []Ring {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	out := make([]Ring, 0, len(rings))
	for _, r := range rings {
		s := simplifyRing(r, eps)
		if len(s) < 3 {
			continue
		}
		if math.Abs(s.SignedArea()) < eps*eps {
			continue
		}
		out = append(out, s)
	}
	return out
}

// simplifyRing merges near-duplicate neighbors and removes collinear
// points.
func simplifyRing(r Ring, eps float64) Ring {
	if len(r) == 0 {
		return nil
	}
	// Drop consecutive duplicates, including the wrap-around pair.
	dedup := make(Ring, 0, len(r))
	for _, pt := range r {
		if len(dedup) > 0 && near(dedup[len(dedup)-1], pt, eps) {
			continue
		}
		dedup = append(dedup, pt)
	}
	for len(dedup) > 1 && near(dedup[0], dedup[len(dedup)-1], eps) {
		dedup = dedup[:len(dedup)-1]
	}
	if len(dedup) < 3 {
		return dedup
	}
	// Remove points that lie on the segment joining their neighbors.
	out := make(Ring, 0, len(dedup))
	n := len(dedup)
	for i := range n {
		prev := dedup[(i+n-1)%n]
		cur := dedup[i]
		next := dedup[(i+1)%n]
		ab := cur.Sub(prev)
		ac := next.Sub(prev)
		if math.Abs(ab.Cross(ac)) < eps*eps {
			continue
		}
		out = append(out, cur)
	}
	return out
}

func near(a, b curve.Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
