package bandforge

import (
	"fmt"
	"math"
)

// QualityPreset selects the sample density of a band's spiral path. It
// trades surface fidelity against generation cost; the geometry is
// otherwise identical across presets.
type QualityPreset int

const (
	// QualityCoarse samples 50k points per band (fast drafts).
	QualityCoarse QualityPreset = iota
	// QualityMedium samples 100k points per band (default).
	QualityMedium
	// QualityFine samples 150k points per band.
	QualityFine
)

// PointCount returns the sample count for the preset.
func (q QualityPreset) PointCount() int {
	switch q {
	case QualityCoarse:
		return 50_000
	case QualityFine:
		return 150_000
	default:
		return 100_000
	}
}

// String returns the string representation of the preset.
func (q QualityPreset) String() string {
	switch q {
	case QualityCoarse:
		return "Coarse"
	case QualityMedium:
		return "Medium"
	case QualityFine:
		return "Fine"
	default:
		return "Unknown"
	}
}

// Practical wristband circumference range in millimeters. Values outside
// this range are rejected by BandSpec.Validate.
const (
	MinCircumferenceMM = 120.0
	MaxCircumferenceMM = 250.0
)

// BandSpec describes one physical band. It is immutable for the duration
// of generation: construct a value, validate it, pass it by value.
type BandSpec struct {
	// FrontText is embossed on the face anchored at angle 0.
	// Empty text yields a plain spiral without emboss on that face.
	FrontText string

	// BackText is embossed, mirrored, on the face anchored at angle π
	// so it reads correctly from the outside.
	BackText string

	// CircumferenceMM is the band's inner circumference.
	CircumferenceMM float64

	// FontSizeMM is the nominal glyph em size in millimeters.
	FontSizeMM float64

	// WiggleAmplitudeMM is the base radial deviation of the meander.
	WiggleAmplitudeMM float64

	// WiggleFrequency is the number of wiggle cycles per full spiral
	// turn: the offset follows sin(WiggleFrequency · θ) over the
	// unwrapped angle θ.
	WiggleFrequency float64

	// Quality selects the sample density.
	Quality QualityPreset

	// PointCount overrides the preset's sample count when non-zero.
	PointCount int

	// EaseInLayers is the number of initial spiral turns over which the
	// wiggle amplitude blends up from zero.
	EaseInLayers int

	// EaseOutLayers is the number of final spiral turns over which the
	// amplitude blends back down to zero.
	EaseOutLayers int
}

// SamplePoints returns the effective sample count: the explicit override
// when set, the quality preset otherwise.
func (s BandSpec) SamplePoints() int {
	if s.PointCount > 0 {
		return s.PointCount
	}
	return s.Quality.PointCount()
}

// NominalRadius returns the unmodulated spiral radius.
func (s BandSpec) NominalRadius() float64 {
	return s.CircumferenceMM / (2 * math.Pi)
}

// Validate checks the band parameters for out-of-range values. It returns a
// *ConfigError describing the first violation, or nil.
func (s BandSpec) Validate() error {
	switch {
	case s.CircumferenceMM <= 0:
		return &ConfigError{Field: "CircumferenceMM", Reason: "must be positive"}
	case s.CircumferenceMM < MinCircumferenceMM || s.CircumferenceMM > MaxCircumferenceMM:
		return &ConfigError{
			Field:  "CircumferenceMM",
			Reason: fmt.Sprintf("%.1f outside [%.0f, %.0f]", s.CircumferenceMM, MinCircumferenceMM, MaxCircumferenceMM),
		}
	case s.WiggleAmplitudeMM < 0:
		return &ConfigError{Field: "WiggleAmplitudeMM", Reason: "must not be negative"}
	case s.WiggleFrequency <= 0:
		return &ConfigError{Field: "WiggleFrequency", Reason: "must be positive"}
	case s.PointCount < 0:
		return &ConfigError{Field: "PointCount", Reason: "must not be negative"}
	case s.SamplePoints() < 2:
		return &ConfigError{Field: "PointCount", Reason: "need at least 2 samples"}
	case s.EaseInLayers < 0:
		return &ConfigError{Field: "EaseInLayers", Reason: "must not be negative"}
	case s.EaseOutLayers < 0:
		return &ConfigError{Field: "EaseOutLayers", Reason: "must not be negative"}
	case (s.FrontText != "" || s.BackText != "") && s.FontSizeMM <= 0:
		return &ConfigError{Field: "FontSizeMM", Reason: "must be positive when text is set"}
	}
	return nil
}

// GlobalConfig holds the print parameters shared by every band on the
// plate. Like BandSpec it is an immutable value: no component reads
// ambient process-wide state.
type GlobalConfig struct {
	NozzleTempC        int
	BedTempC           int
	PrintSpeedMMPerMin float64
	FanPct             int

	// ExtrusionWidthMM and LayerHeightMM describe the extruded track.
	// LayerHeightMM is also the spiral's pitch per turn.
	ExtrusionWidthMM float64
	LayerHeightMM    float64

	// BandHeightMM is the total axial height of each band.
	BandHeightMM float64

	// GridSpacingXMM / GridSpacingYMM are the clear gaps between
	// neighboring band footprints on the plate.
	GridSpacingXMM float64
	GridSpacingYMM float64

	// PrinterProfileID selects bed bounds from a ProfileStore.
	PrinterProfileID string
}

// DefaultConfig returns the stock print parameters for TPU bands.
func DefaultConfig() GlobalConfig {
	return GlobalConfig{
		NozzleTempC:        220,
		BedTempC:           60,
		PrintSpeedMMPerMin: 1100,
		FanPct:             30,
		ExtrusionWidthMM:   0.5,
		LayerHeightMM:      0.2,
		BandHeightMM:       18,
		GridSpacingXMM:     10,
		GridSpacingYMM:     10,
		PrinterProfileID:   "anycubic_kobra3",
	}
}

// Turns returns the number of full spiral revolutions per band.
func (c GlobalConfig) Turns() float64 {
	return c.BandHeightMM / c.LayerHeightMM
}

// InitialZ returns the starting nozzle height. The first layer is
// squished to 70% of the layer height for bed adhesion.
func (c GlobalConfig) InitialZ() float64 {
	return 0.7 * c.LayerHeightMM
}

// Validate checks the config for out-of-range values.
func (c GlobalConfig) Validate() error {
	switch {
	case c.LayerHeightMM <= 0:
		return &ConfigError{Field: "LayerHeightMM", Reason: "must be positive"}
	case c.BandHeightMM <= 0:
		return &ConfigError{Field: "BandHeightMM", Reason: "must be positive"}
	case c.BandHeightMM < c.LayerHeightMM:
		return &ConfigError{Field: "BandHeightMM", Reason: "must be at least one layer height"}
	case c.ExtrusionWidthMM <= 0:
		return &ConfigError{Field: "ExtrusionWidthMM", Reason: "must be positive"}
	case c.PrintSpeedMMPerMin <= 0:
		return &ConfigError{Field: "PrintSpeedMMPerMin", Reason: "must be positive"}
	case c.FanPct < 0 || c.FanPct > 100:
		return &ConfigError{Field: "FanPct", Reason: "must be within [0, 100]"}
	case c.GridSpacingXMM < 0 || c.GridSpacingYMM < 0:
		return &ConfigError{Field: "GridSpacing", Reason: "must not be negative"}
	}
	return nil
}
