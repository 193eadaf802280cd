// Package poly provides closed 2D polygons with holes and a batched
// point-classification routine tuned for classifying very large sample
// arrays against many small polygons.
//
// Membership uses the even-odd rule, applied uniformly: a point is inside
// when a ray from it crosses the polygon's contours an odd number of
// times. Ring nesting therefore never changes the result; winding is
// normalized (outer rings counter-clockwise, holes clockwise) purely so
// the representation is canonical.
package poly

import (
	"errors"

	"honnef.co/go/curve"
)

// Sentinel errors for polygon construction.
var (
	// ErrTooFewPoints is returned when a ring has fewer than 3 points.
	ErrTooFewPoints = errors.New("poly: ring needs at least 3 points")

	// ErrZeroArea is returned when a polygon's outer ring has no area.
	ErrZeroArea = errors.New("poly: outer ring has zero area")
)

// Ring is a closed contour. The edge from the last point back to the
// first is implicit.
type Ring []curve.Point

// SignedArea returns the shoelace area: positive for counter-clockwise
// rings, negative for clockwise rings.
func (r Ring) SignedArea() float64 {
	var sum float64
	n := len(r)
	for i := range n {
		j := (i + 1) % n
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return sum / 2
}

// IsCCW reports whether the ring winds counter-clockwise.
func (r Ring) IsCCW() bool { return r.SignedArea() > 0 }

// Reversed returns a copy of the ring with opposite winding.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, pt := range r {
		out[len(r)-1-i] = pt
	}
	return out
}

// BoundingBox returns the ring's axis-aligned bounds.
func (r Ring) BoundingBox() curve.Rect {
	if len(r) == 0 {
		return curve.Rect{}
	}
	bb := curve.Rect{X0: r[0].X, Y0: r[0].Y, X1: r[0].X, Y1: r[0].Y}
	for _, pt := range r[1:] {
		bb = bb.UnionPoint(pt)
	}
	return bb
}

// Polygon is one outer ring plus zero or more hole rings, with cached
// bounds. Construct with New; a Polygon is immutable afterwards.
type Polygon struct {
	rings  []Ring
	bounds curve.Rect
}

// New builds a polygon from an outer ring and optional holes. Winding is
// normalized: the outer ring is made counter-clockwise, holes clockwise.
// Rings with fewer than 3 points are rejected; a zero-area outer ring is
// rejected.
func New(outer Ring, holes ...Ring) (*Polygon, error) {
	if len(outer) < 3 {
		return nil, ErrTooFewPoints
	}
	if outer.SignedArea() == 0 {
		return nil, ErrZeroArea
	}
	if !outer.IsCCW() {
		outer = outer.Reversed()
	}
	rings := make([]Ring, 0, 1+len(holes))
	rings = append(rings, outer)
	for _, h := range holes {
		if len(h) < 3 {
			return nil, ErrTooFewPoints
		}
		if h.IsCCW() {
			h = h.Reversed()
		}
		rings = append(rings, h)
	}
	p := &Polygon{rings: rings}
	p.bounds = outer.BoundingBox()
	return p, nil
}

// Rings returns the polygon's contours: the outer ring first
// (counter-clockwise), then holes (clockwise). The slice is shared; do
// not mutate it.
func (p *Polygon) Rings() []Ring { return p.rings }

// Bounds returns the polygon's axis-aligned bounding box.
func (p *Polygon) Bounds() curve.Rect { return p.bounds }

// Area returns the enclosed area under the even-odd rule: the outer area
// minus hole areas.
func (p *Polygon) Area() float64 {
	var a float64
	for _, r := range p.rings {
		a += r.SignedArea()
	}
	return a
}

// Transform returns a new polygon with every point mapped through aff.
// Winding is re-normalized, since mirroring transforms flip it.
func (p *Polygon) Transform(aff curve.Affine) (*Polygon, error) {
	mapRing := func(r Ring) Ring {
		out := make(Ring, len(r))
		for i, pt := range r {
			out[i] = pt.Transform(aff)
		}
		return out
	}
	outer := mapRing(p.rings[0])
	holes := make([]Ring, 0, len(p.rings)-1)
	for _, h := range p.rings[1:] {
		holes = append(holes, mapRing(h))
	}
	return New(outer, holes...)
}
