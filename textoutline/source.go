package textoutline

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is a loaded font file, parsed once for both shaping
// (go-text/typesetting) and outline extraction (x/image sfnt).
// FontSource is heavyweight and should be shared; it is safe for
// concurrent use because both parsed forms are read-only. Per-call
// mutable state (sfnt buffers, HarfBuzz faces) is created per operation.
type FontSource struct {
	data    []byte
	outline *opentype.Font // alias of sfnt.Font
	hb      *font.Font
	name    string
}

// NewFontSource parses TTF or OTF font data. The data slice is copied
// internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("textoutline: failed to parse font: %w", err)
	}
	hbFace, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("textoutline: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		data:    dataCopy,
		outline: parsed,
		hb:      hbFace.Font,
	}
	s.name = fontName(parsed)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textoutline: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "Unknown Font" when the font
// carries none.
func (s *FontSource) Name() string { return s.name }

// fontName extracts the family name, falling back to the full name.
func fontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
