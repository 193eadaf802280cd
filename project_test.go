package bandforge

import (
	"math"
	"testing"

	"github.com/bandforge/bandforge/textoutline"
)

func TestProjectFaceEmptyShape(t *testing.T) {
	fp, err := projectFace(textoutline.TextShape{}, FaceFront, 160, 18)
	if err != nil {
		t.Fatalf("projectFace() error = %v", err)
	}
	if len(fp.polys) != 0 {
		t.Errorf("empty shape projected to %d polygons", len(fp.polys))
	}
}

func TestProjectFaceCentering(t *testing.T) {
	font := testFont(t)
	shape, err := textoutline.Extract(font, "HELLO", 8, 0.02)
	if err != nil {
		t.Fatal(err)
	}

	const circumference, bandHeight = 160.0, 18.0
	fp, err := projectFace(shape, FaceFront, circumference, bandHeight)
	if err != nil {
		t.Fatalf("projectFace() error = %v", err)
	}
	if len(fp.polys) == 0 {
		t.Fatal("no polygons projected")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range fp.polys {
		b := p.Bounds()
		minX, minY = math.Min(minX, b.X0), math.Min(minY, b.Y0)
		maxX, maxY = math.Max(maxX, b.X1), math.Max(maxY, b.Y1)
	}

	const eps = 1e-9
	if math.Abs(minX+maxX) > eps {
		t.Errorf("text not centered on face anchor: x span [%v, %v]", minX, maxX)
	}
	if math.Abs((minY+maxY)/2-bandHeight/2) > eps {
		t.Errorf("text not centered vertically: y span [%v, %v]", minY, maxY)
	}
	if maxX-minX > circumference/2+eps {
		t.Errorf("projected width %v exceeds half circumference", maxX-minX)
	}
}

func TestProjectFaceBackMirrors(t *testing.T) {
	font := testFont(t)
	// An asymmetric glyph, so mirroring is observable.
	shape, err := textoutline.Extract(font, "F", 10, 0.02)
	if err != nil {
		t.Fatal(err)
	}

	front, err := projectFace(shape, FaceFront, 160, 18)
	if err != nil {
		t.Fatal(err)
	}
	back, err := projectFace(shape, FaceBack, 160, 18)
	if err != nil {
		t.Fatal(err)
	}

	contains := func(fp facePolygons, x, y float64) bool {
		for _, p := range fp.polys {
			if p.Contains(x, y) {
				return true
			}
		}
		return false
	}

	// Probe a grid over the face; front at (x, y) must match back at
	// (-x, y). Skip points too close to an edge where the mirrored
	// half-open boundary rule may legitimately differ.
	nearEdge := func(fp facePolygons, x, y float64) bool {
		const d = 1e-6
		c := contains(fp, x, y)
		for _, dx := range []float64{-d, d} {
			for _, dy := range []float64{-d, d} {
				if contains(fp, x+dx, y+dy) != c {
					return true
				}
			}
		}
		return false
	}

	checked := 0
	for x := -6.0; x <= 6.0; x += 0.25 {
		for y := 3.0; y <= 15.0; y += 0.25 {
			if nearEdge(front, x, y) || nearEdge(back, -x, y) {
				continue
			}
			checked++
			if contains(front, x, y) != contains(back, -x, y) {
				t.Fatalf("mirror mismatch at (%v, %v)", x, y)
			}
		}
	}
	if checked == 0 {
		t.Fatal("probe grid hit no stable points")
	}
}

func TestProjectFaceAutoShrink(t *testing.T) {
	font := testFont(t)
	// Long text at a big size overflows half the circumference and must
	// be shrunk to fit, never clipped.
	shape, err := textoutline.Extract(font, "WWWWWWWWWW", 14, 0.02)
	if err != nil {
		t.Fatal(err)
	}
	const circumference = 120.0
	if shape.Width <= circumference/2 {
		t.Skipf("test text not wide enough: %v", shape.Width)
	}

	fp, err := projectFace(shape, FaceFront, circumference, 18)
	if err != nil {
		t.Fatal(err)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, p := range fp.polys {
		b := p.Bounds()
		minX, maxX = math.Min(minX, b.X0), math.Max(maxX, b.X1)
	}
	if got := maxX - minX; got > circumference/2+1e-9 {
		t.Errorf("shrunk width = %v, want at most %v", got, circumference/2)
	}
	if len(fp.polys) != len(shape.Polygons) {
		t.Errorf("polygon count changed: %d -> %d (clipping?)", len(shape.Polygons), len(fp.polys))
	}
}

func TestFaceString(t *testing.T) {
	if FaceFront.String() != "Front" || FaceBack.String() != "Back" {
		t.Errorf("Face strings = %q, %q", FaceFront.String(), FaceBack.String())
	}
}
