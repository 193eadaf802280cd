package textoutline

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/curve"

	"github.com/bandforge/bandforge/poly"
)

// extractor loads glyph outlines. The sfnt buffer is reused across
// glyphs; an extractor is not safe for concurrent use.
type extractor struct {
	buf sfnt.Buffer
}

// glyphRings loads the outline for gid at sizeMM and flattens it to
// closed rings. Curve segments are approximated by line segments within
// tol millimeters. Glyphs without contours (e.g. space) yield an empty
// slice and no error.
//
// sfnt outlines are y-down; the returned rings are y-up with the
// baseline at y = 0.
func (e *extractor) glyphRings(f *sfnt.Font, gid uint16, sizeMM, tol float64) ([]poly.Ring, error) {
	ppem := fixed.Int26_6(sizeMM * 64)
	segments, err := f.LoadGlyph(&e.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("textoutline: load glyph %d: %w", gid, err)
	}
	if len(segments) == 0 {
		return nil, nil
	}

	var bez curve.BezPath
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			bez.MoveTo(fixedPt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			bez.LineTo(fixedPt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bez.QuadTo(fixedPt(seg.Args[0]), fixedPt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			bez.CubicTo(fixedPt(seg.Args[0]), fixedPt(seg.Args[1]), fixedPt(seg.Args[2]))
		}
	}
	return flattenRings(bez, tol), nil
}

// flattenRings flattens a bezier path to line segments and splits it
// into one ring per subpath.
func flattenRings(bez curve.BezPath, tol float64) []poly.Ring {
	var rings []poly.Ring
	var cur poly.Ring
	flush := func() {
		if len(cur) >= 3 {
			rings = append(rings, cur)
		}
		cur = nil
	}
	for el := range curve.Flatten(bez.PathElements(0), tol) {
		switch el.Kind {
		case curve.MoveToKind:
			flush()
			cur = poly.Ring{el.P0}
		case curve.LineToKind:
			cur = append(cur, el.P0)
		case curve.ClosePathKind:
			flush()
		}
	}
	flush()
	return rings
}

// fixedPt converts an sfnt 26.6 point to a y-up curve.Point.
func fixedPt(p fixed.Point26_6) curve.Point {
	return curve.Pt(float64(p.X)/64, -float64(p.Y)/64)
}
