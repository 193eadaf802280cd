// Package textoutline converts text strings into flattened glyph
// polygons suitable for point classification.
//
// Shaping (glyph selection, advances, kerning, ligatures) is done with
// go-text/typesetting's HarfBuzz implementation; outlines are loaded from
// the same font file via golang.org/x/image/font/sfnt and flattened to
// line-segment rings with honnef.co/go/curve at a caller-chosen
// tolerance. Coordinates are y-up millimeters with the baseline of the
// first glyph at the origin before normalization.
package textoutline
