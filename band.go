package bandforge

import (
	"errors"
	"math"

	"github.com/bandforge/bandforge/textoutline"
)

// BandResult is one band's finished geometry, centered on the origin.
// The grid assembler translates the toolpath into plate coordinates; it
// never re-derives path geometry.
type BandResult struct {
	Spec   BandSpec
	Stream *SampleStream

	// Toolpath is the ordered 3D point sequence, x/y centered on the
	// band axis, z starting at the squished first layer.
	Toolpath Toolpath

	// Warnings holds recovered text problems (skipped glyphs).
	Warnings []textoutline.Warning
}

// GenerateBand runs the full single-band pipeline: text outlines →
// cylindrical projection → spiral synthesis → wiggle modulation → ease
// blending → 3D toolpath. It is a pure, deterministic function of its
// inputs.
//
// font may be nil when both texts are empty. Errors are *ConfigError for
// invalid input and *GeometryError for glyph geometry that stayed
// degenerate after the single repair attempt.
func GenerateBand(spec BandSpec, cfg GlobalConfig, font *textoutline.FontSource, opts ...Option) (*BandResult, error) {
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return generateBand(spec, cfg, font, o)
}

func generateBand(spec BandSpec, cfg GlobalConfig, font *textoutline.FontSource, o genOptions) (*BandResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hasText := spec.FrontText != "" || spec.BackText != ""
	if hasText && font == nil {
		return nil, &ConfigError{Field: "Font", Reason: "font source required when text is set"}
	}

	res := &BandResult{Spec: spec}

	var front, back facePolygons
	if hasText {
		var err error
		front, back, res.Warnings, err = buildFaces(spec, cfg, font, o.flattenTolerance)
		if err != nil {
			return nil, err
		}
	}

	n := spec.SamplePoints()
	turns := cfg.Turns()
	st := synthesizeSpiral(n, turns, cfg.BandHeightMM, spec.NominalRadius())

	// Ease windows are given in layers (spiral turns); convert to
	// sample counts.
	samplesPerTurn := float64(n-1) / turns
	easeIn := int(float64(spec.EaseInLayers) * samplesPerTurn)
	easeOut := int(float64(spec.EaseOutLayers) * samplesPerTurn)
	ease := easeProfile(n, easeIn, easeOut)

	modulate(st, front, back, spec, ease, o.embossGain, o.workers)

	res.Stream = st
	res.Toolpath = streamToolpath(st, cfg.InitialZ())

	Logger().Debug("band generated",
		"samples", n,
		"turns", turns,
		"front_polygons", len(front.polys),
		"back_polygons", len(back.polys),
		"warnings", len(res.Warnings))
	return res, nil
}

// buildFaces extracts and projects both text faces.
func buildFaces(spec BandSpec, cfg GlobalConfig, font *textoutline.FontSource, tol float64) (front, back facePolygons, warnings []textoutline.Warning, err error) {
	frontShape, err := textoutline.Extract(font, spec.FrontText, spec.FontSizeMM, tol)
	if err != nil {
		return front, back, nil, asGeometryError(err)
	}
	backShape, err := textoutline.Extract(font, spec.BackText, spec.FontSizeMM, tol)
	if err != nil {
		return front, back, nil, asGeometryError(err)
	}
	warnings = append(warnings, frontShape.Warnings...)
	warnings = append(warnings, backShape.Warnings...)
	for _, w := range warnings {
		Logger().Warn("text glyph skipped", "detail", w.Message)
	}

	front, err = projectFace(frontShape, FaceFront, spec.CircumferenceMM, cfg.BandHeightMM)
	if err != nil {
		return front, back, warnings, err
	}
	back, err = projectFace(backShape, FaceBack, spec.CircumferenceMM, cfg.BandHeightMM)
	return front, back, warnings, err
}

// asGeometryError converts the textoutline degenerate-geometry sentinel
// into the package error taxonomy.
func asGeometryError(err error) error {
	if errors.Is(err, textoutline.ErrDegenerate) {
		return &GeometryError{Reason: err.Error()}
	}
	return err
}

// streamToolpath converts the sample stream into 3D points around the
// origin. z rises from initialZ so the first layer is squished onto the
// bed.
func streamToolpath(st *SampleStream, initialZ float64) Toolpath {
	pts := make([]Point3, st.Len())
	for i := range pts {
		r := st.Radius[i]
		pts[i] = Point3{
			X: r * math.Cos(st.Theta[i]),
			Y: r * math.Sin(st.Theta[i]),
			Z: st.Height[i] + initialZ,
		}
	}
	return Toolpath{Points: pts}
}
