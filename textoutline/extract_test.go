package textoutline

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

const testTol = 0.02

func testSource(t *testing.T) *FontSource {
	t.Helper()
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	return src
}

func TestNewFontSource(t *testing.T) {
	src := testSource(t)
	if src.Name() == "" {
		t.Error("font name is empty")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyFontData},
		{"garbage", []byte("not a font"), nil}, // any parse error accepted
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFontSource(tt.data)
			if err == nil {
				t.Fatal("NewFontSource() succeeded on invalid data")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExtractEmptyText(t *testing.T) {
	src := testSource(t)
	shape, err := Extract(src, "", 10, testTol)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !shape.IsEmpty() {
		t.Errorf("empty text produced %d polygons", len(shape.Polygons))
	}
	if shape.Width != 0 || shape.Height != 0 {
		t.Errorf("empty shape has size %v x %v", shape.Width, shape.Height)
	}
}

func TestExtractSolidGlyph(t *testing.T) {
	src := testSource(t)
	shape, err := Extract(src, "L", 10, testTol)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(shape.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(shape.Polygons))
	}
	if rings := shape.Polygons[0].Rings(); len(rings) != 1 {
		t.Errorf("'L' has %d rings, want 1 (no holes)", len(rings))
	}
}

func TestExtractGlyphWithHole(t *testing.T) {
	src := testSource(t)
	shape, err := Extract(src, "O", 10, testTol)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(shape.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(shape.Polygons))
	}
	rings := shape.Polygons[0].Rings()
	if len(rings) != 2 {
		t.Fatalf("'O' has %d rings, want 2 (outer + counter)", len(rings))
	}
	if !rings[0].IsCCW() {
		t.Error("outer ring not counter-clockwise")
	}
	if rings[1].IsCCW() {
		t.Error("counter (hole) ring not clockwise")
	}

	// The glyph center sits in the counter, outside the stroke.
	cx, cy := shape.Width/2, shape.Height/2
	if shape.Polygons[0].Contains(cx, cy) {
		t.Error("center of 'O' classified inside the stroke")
	}
}

func TestExtractNormalizedToOrigin(t *testing.T) {
	src := testSource(t)
	shape, err := Extract(src, "Hi", 10, testTol)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if shape.IsEmpty() {
		t.Fatal("no polygons for 'Hi'")
	}
	minX, minY := shape.Polygons[0].Bounds().X0, shape.Polygons[0].Bounds().Y0
	maxX, maxY := shape.Polygons[0].Bounds().X1, shape.Polygons[0].Bounds().Y1
	for _, p := range shape.Polygons[1:] {
		b := p.Bounds()
		minX, minY = min(minX, b.X0), min(minY, b.Y0)
		maxX, maxY = max(maxX, b.X1), max(maxY, b.Y1)
	}
	const eps = 1e-9
	if minX < -eps || minY < -eps {
		t.Errorf("bounding box min = (%v, %v), want origin", minX, minY)
	}
	if got := maxX - minX; got < eps || absDiff(got, shape.Width) > eps {
		t.Errorf("Width = %v, bbox width = %v", shape.Width, got)
	}
	if got := maxY - minY; got < eps || absDiff(got, shape.Height) > eps {
		t.Errorf("Height = %v, bbox height = %v", shape.Height, got)
	}
}

func TestExtractScalesWithSize(t *testing.T) {
	src := testSource(t)
	small, err := Extract(src, "W", 5, testTol)
	if err != nil {
		t.Fatal(err)
	}
	large, err := Extract(src, "W", 10, testTol)
	if err != nil {
		t.Fatal(err)
	}
	ratio := large.Width / small.Width
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("doubling size scaled width by %v, want ~2", ratio)
	}
}

func TestExtractMissingGlyphWarns(t *testing.T) {
	src := testSource(t)
	// Go Regular has no CJK coverage; the glyph maps to .notdef.
	shape, err := Extract(src, "A世B", 10, testTol)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(shape.Warnings) == 0 {
		t.Error("unmapped rune produced no warning")
	}
	if shape.IsEmpty() {
		t.Error("remaining glyphs were dropped along with the missing one")
	}
}

func TestExtractDeterministic(t *testing.T) {
	src := testSource(t)
	a, err := Extract(src, "Band", 8, testTol)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Extract(src, "Band", 8, testTol)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Polygons) != len(b.Polygons) {
		t.Fatalf("polygon counts differ: %d vs %d", len(a.Polygons), len(b.Polygons))
	}
	if a.Width != b.Width || a.Height != b.Height {
		t.Errorf("sizes differ: (%v, %v) vs (%v, %v)", a.Width, a.Height, b.Width, b.Height)
	}
	for i := range a.Polygons {
		ra, rb := a.Polygons[i].Rings(), b.Polygons[i].Rings()
		if len(ra) != len(rb) {
			t.Fatalf("polygon %d: ring counts differ", i)
		}
		for j := range ra {
			if len(ra[j]) != len(rb[j]) {
				t.Fatalf("polygon %d ring %d: point counts differ", i, j)
			}
			for k := range ra[j] {
				if ra[j][k] != rb[j][k] {
					t.Fatalf("polygon %d ring %d point %d differs", i, j, k)
				}
			}
		}
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
