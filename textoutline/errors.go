package textoutline

import "errors"

// Sentinel errors for the textoutline package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("textoutline: empty font data")

	// ErrDegenerate is returned when a glyph's contours remain
	// self-degenerate (zero area or too few points) after the single
	// repair pass.
	ErrDegenerate = errors.New("textoutline: glyph contours degenerate after repair")
)

// Warning records a locally recovered problem: the offending glyph was
// skipped and extraction continued.
type Warning struct {
	// Cluster is the rune index in the normalized input text.
	Cluster int

	// Message describes what was skipped and why.
	Message string
}

func (w Warning) String() string { return w.Message }
