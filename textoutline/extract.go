package textoutline

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
	"honnef.co/go/curve"

	"github.com/bandforge/bandforge/poly"
)

// TextShape is the polygon set for one piece of text, laid out along a
// baseline with shaping-supplied advances and kerning, then normalized
// so the bounding box starts at (0, 0). Coordinates are millimeters,
// y-up.
type TextShape struct {
	// Polygons holds one polygon per glyph contour group; glyphs with
	// enclosed regions carry them as hole rings of opposite winding.
	Polygons []*poly.Polygon

	// Width and Height are the normalized bounding-box dimensions.
	Width  float64
	Height float64

	// Warnings records glyphs that were skipped (e.g. characters the
	// font cannot render). Generation continues past them.
	Warnings []Warning
}

// IsEmpty reports whether the shape has no polygons.
func (s TextShape) IsEmpty() bool { return len(s.Polygons) == 0 }

// Extract converts text into a TextShape at the given glyph size.
// Outline curves are flattened within tol millimeters.
//
// Empty text yields an empty shape and no error. A character without a
// glyph is skipped and recorded as a Warning. A glyph whose contours
// stay degenerate after the single repair pass makes Extract fail with
// an error wrapping ErrDegenerate.
func Extract(src *FontSource, text string, sizeMM, tol float64) (TextShape, error) {
	var shape TextShape
	if text == "" {
		return shape, nil
	}
	text = norm.NFC.String(text)
	runes := []rune(text)

	glyphs := shapeText(src, text, sizeMM)
	var ex extractor
	for _, g := range glyphs {
		if g.GID == 0 {
			shape.Warnings = append(shape.Warnings, Warning{
				Cluster: g.Cluster,
				Message: fmt.Sprintf("textoutline: no glyph for %q, skipped", clusterRune(runes, g.Cluster)),
			})
			continue
		}
		rings, err := ex.glyphRings(src.outline, g.GID, sizeMM, tol)
		if err != nil {
			shape.Warnings = append(shape.Warnings, Warning{
				Cluster: g.Cluster,
				Message: fmt.Sprintf("textoutline: %v, glyph skipped", err),
			})
			continue
		}
		if len(rings) == 0 {
			continue // space or other blank glyph
		}

		pen := curve.Translate(curve.Vec(g.X, g.Y))
		for i, r := range rings {
			moved := make(poly.Ring, len(r))
			for j, pt := range r {
				moved[j] = pt.Transform(pen)
			}
			rings[i] = moved
		}

		repaired := poly.Repair(rings, poly.DefaultEpsilon)
		if len(repaired) == 0 {
			return shape, fmt.Errorf("%w: %q", ErrDegenerate, clusterRune(runes, g.Cluster))
		}
		polys, err := assemblePolygons(repaired)
		if err != nil {
			return shape, fmt.Errorf("%w: %q: %v", ErrDegenerate, clusterRune(runes, g.Cluster), err)
		}
		shape.Polygons = append(shape.Polygons, polys...)
	}

	if len(shape.Polygons) == 0 {
		return shape, nil
	}
	normalize(&shape)
	return shape, nil
}

// normalize translates all polygons so the combined bounding box starts
// at the origin, and records its dimensions.
func normalize(shape *TextShape) {
	bounds := shape.Polygons[0].Bounds()
	for _, p := range shape.Polygons[1:] {
		bounds = bounds.Union(p.Bounds())
	}
	move := curve.Translate(curve.Vec(-bounds.X0, -bounds.Y0))
	for i, p := range shape.Polygons {
		moved, err := p.Transform(move)
		if err != nil {
			continue // translation preserves validity
		}
		shape.Polygons[i] = moved
	}
	shape.Width = bounds.Width()
	shape.Height = bounds.Height()
}

// assemblePolygons groups a glyph's rings into polygons with holes by
// containment depth: rings nested inside an even number of other rings
// are outer contours, odd-depth rings become holes of their innermost
// enclosing outer.
func assemblePolygons(rings []poly.Ring) ([]*poly.Polygon, error) {
	type ringInfo struct {
		ring  poly.Ring
		depth int
		probe *poly.Polygon
	}
	infos := make([]ringInfo, len(rings))
	for i, r := range rings {
		p, err := poly.New(r)
		if err != nil {
			return nil, err
		}
		infos[i] = ringInfo{ring: r, probe: p}
	}
	for i := range infos {
		pt := infos[i].ring[0]
		for j := range infos {
			if i == j {
				continue
			}
			if infos[j].probe.Contains(pt.X, pt.Y) {
				infos[i].depth++
			}
		}
	}

	var result []*poly.Polygon
	for i := range infos {
		if infos[i].depth%2 != 0 {
			continue
		}
		var holes []poly.Ring
		for j := range infos {
			if infos[j].depth != infos[i].depth+1 {
				continue
			}
			if infos[i].probe.Contains(infos[j].ring[0].X, infos[j].ring[0].Y) {
				holes = append(holes, infos[j].ring)
			}
		}
		p, err := poly.New(infos[i].ring, holes...)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// clusterRune returns the rune at a cluster index, guarding against
// out-of-range cluster values from ligature substitution.
func clusterRune(runes []rune, cluster int) rune {
	if cluster < 0 || cluster >= len(runes) {
		return '�'
	}
	return runes[cluster]
}
