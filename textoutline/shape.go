package textoutline

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapedGlyph is one positioned glyph from HarfBuzz shaping. X and Y are
// pen positions in millimeters relative to the text origin; kerning and
// ligature substitution are already applied.
type shapedGlyph struct {
	GID     uint16
	Cluster int
	X, Y    float64
}

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reusing instances
// across sequential calls avoids reallocating its buffers.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// shapeText shapes text at the given size. Advances come back in the
// same unit as the size, so passing millimeters yields millimeter pen
// positions. Unsupported characters map to GID 0 and are handled by the
// caller.
func shapeText(src *FontSource, text string, sizeMM float64) []shapedGlyph {
	if text == "" {
		return nil
	}

	// font.Face is not safe for concurrent use; font.Font is. Each call
	// gets a lightweight Face wrapping the shared Font.
	face := font.NewFace(src.hb)
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(sizeMM),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	result := make([]shapedGlyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		result[i] = shapedGlyph{
			GID:     uint16(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
		}
		// Horizontal text: the advance moves the pen along X.
		x += fixedToFloat(g.Advance)
	}
	return result
}

// detectScript returns the script of the first non-space rune, defaulting
// to Latin. Mixed-script text should be split into runs by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
