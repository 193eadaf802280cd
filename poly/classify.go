package poly

// This file holds the performance-critical batch classification used by
// the emboss modulator: N sample points (N is routinely 100k+) tested
// against M glyph polygons. Points are rejected against each polygon's
// bounding box with four comparisons before the exact even-odd crossing
// test runs, and whole polygons are skipped when their bounds miss the
// sample extent, so cost grows sub-linearly with the polygon count.

// Contains reports whether (x, y) lies inside the polygon under the
// even-odd rule. Boundary behavior is deterministic: each edge counts
// crossings on the half-open vertical span [min(y0,y1), max(y0,y1)), so
// a ray through a shared vertex counts exactly one of the two edges.
func (p *Polygon) Contains(x, y float64) bool {
	if x < p.bounds.X0 || x > p.bounds.X1 || y < p.bounds.Y0 || y > p.bounds.Y1 {
		return false
	}
	return p.crossings(x, y)
}

// crossings runs the even-odd ray test over all rings, without the
// bounding-box prefilter.
func (p *Polygon) crossings(x, y float64) bool {
	inside := false
	for _, r := range p.rings {
		n := len(r)
		j := n - 1
		for i := range n {
			yi, yj := r[i].Y, r[j].Y
			if (yi > y) != (yj > y) {
				xi, xj := r[i].X, r[j].X
				// X of the edge at height y.
				t := (y - yi) / (yj - yi)
				if x < xi+t*(xj-xi) {
					inside = !inside
				}
			}
			j = i
		}
	}
	return inside
}

// ContainsBatch classifies every (xs[i], ys[i]) against the polygon and
// ORs the result into inside[i], so results accumulate across repeated
// calls with different polygons. Points already marked inside are
// skipped. The three slices must have equal length.
func (p *Polygon) ContainsBatch(xs, ys []float64, inside []bool) {
	x0, y0, x1, y1 := p.bounds.X0, p.bounds.Y0, p.bounds.X1, p.bounds.Y1
	for i, x := range xs {
		if inside[i] {
			continue
		}
		y := ys[i]
		if x < x0 || x > x1 || y < y0 || y > y1 {
			continue
		}
		if p.crossings(x, y) {
			inside[i] = true
		}
	}
}

// ClassifyPoints classifies the sample arrays against every polygon,
// accumulating into inside. Polygons whose bounds do not intersect the
// samples' overall extent are rejected with a single box check.
func ClassifyPoints(polys []*Polygon, xs, ys []float64, inside []bool) {
	if len(xs) == 0 || len(polys) == 0 {
		return
	}
	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < minX {
			minX = x
		} else if x > maxX {
			maxX = x
		}
	}
	minY, maxY := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < minY {
			minY = y
		} else if y > maxY {
			maxY = y
		}
	}
	for _, p := range polys {
		b := p.bounds
		if b.X1 < minX || b.X0 > maxX || b.Y1 < minY || b.Y0 > maxY {
			continue
		}
		p.ContainsBatch(xs, ys, inside)
	}
}
