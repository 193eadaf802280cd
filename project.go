package bandforge

import (
	"fmt"

	"honnef.co/go/curve"

	"github.com/bandforge/bandforge/poly"
	"github.com/bandforge/bandforge/textoutline"
)

// Face identifies which side of the band a glyph polygon belongs to.
type Face int

const (
	// FaceFront is anchored at angle 0.
	FaceFront Face = iota
	// FaceBack is anchored at angle π.
	FaceBack
)

// String returns the string representation of the face.
func (f Face) String() string {
	switch f {
	case FaceFront:
		return "Front"
	case FaceBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// facePolygons holds one face's glyph polygons in surface coordinates:
// x is millimeters along the circumference measured from the face
// anchor (front: angle 0, back: angle π), y is millimeters of band
// height. With the overflow policy below, every polygon lies within
// x ∈ [−C/4, C/4].
type facePolygons struct {
	face  Face
	polys []*poly.Polygon
}

// projectFace maps a normalized text shape onto one face of the
// cylinder: horizontally centered on the face anchor, vertically
// centered at half the band height. The back face is mirrored about its
// vertical axis so the text reads correctly from outside the band.
//
// Overflow policy (fixed): when the text is wider than half the
// circumference, the whole shape is auto-shrunk uniformly by
// (C/2) / width. The policy is deterministic and applied per face;
// overflow is never clipped.
func projectFace(shape textoutline.TextShape, face Face, circumference, bandHeight float64) (facePolygons, error) {
	fp := facePolygons{face: face}
	if shape.IsEmpty() {
		return fp, nil
	}

	scale := 1.0
	if shape.Width > circumference/2 {
		scale = circumference / 2 / shape.Width
		Logger().Warn("text wider than half circumference, auto-shrinking",
			"face", face.String(),
			"width_mm", shape.Width,
			"scale", scale)
	}
	sx := scale
	if face == FaceBack {
		sx = -scale
	}

	// Center the shape, scale (mirroring the back face), then lift to
	// the vertical center of the band.
	aff := curve.Translate(curve.Vec(0, bandHeight/2)).
		Mul(curve.Scale(sx, scale)).
		Mul(curve.Translate(curve.Vec(-shape.Width/2, -shape.Height/2)))

	fp.polys = make([]*poly.Polygon, 0, len(shape.Polygons))
	for _, p := range shape.Polygons {
		moved, err := p.Transform(aff)
		if err != nil {
			return fp, fmt.Errorf("bandforge: projecting %s face: %w", face, err)
		}
		fp.polys = append(fp.polys, moved)
	}
	return fp, nil
}
