package bandforge

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bandforge/bandforge/textoutline"
)

func testFont(t *testing.T) *textoutline.FontSource {
	t.Helper()
	src, err := textoutline.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	return src
}

func fastBandSpec() BandSpec {
	s := validBandSpec()
	s.PointCount = 3000
	return s
}

func TestGenerateBand(t *testing.T) {
	spec := fastBandSpec()
	cfg := DefaultConfig()
	res, err := GenerateBand(spec, cfg, testFont(t))
	if err != nil {
		t.Fatalf("GenerateBand() error = %v", err)
	}

	n := spec.SamplePoints()
	if res.Stream.Len() != n {
		t.Fatalf("stream has %d samples, want %d", res.Stream.Len(), n)
	}
	if len(res.Toolpath.Points) != n {
		t.Fatalf("toolpath has %d points, want %d", len(res.Toolpath.Points), n)
	}

	first := res.Toolpath.Points[0]
	if math.Abs(first.Z-cfg.InitialZ()) > 1e-12 {
		t.Errorf("first point z = %v, want squished first layer %v", first.Z, cfg.InitialZ())
	}
	last := res.Toolpath.Points[n-1]
	if math.Abs(last.Z-(cfg.BandHeightMM+cfg.InitialZ())) > 1e-9 {
		t.Errorf("last point z = %v, want %v", last.Z, cfg.BandHeightMM+cfg.InitialZ())
	}

	// Ease windows hold the first and last samples at the plain circle.
	nominal := spec.NominalRadius()
	if r := math.Hypot(first.X, first.Y); math.Abs(r-nominal) > 1e-9 {
		t.Errorf("first point radius = %v, want nominal %v", r, nominal)
	}
	if r := math.Hypot(last.X, last.Y); math.Abs(r-nominal) > 1e-9 {
		t.Errorf("last point radius = %v, want nominal %v", r, nominal)
	}

	// Every sample stays within the amplified wiggle envelope.
	bound := spec.WiggleAmplitudeMM*1.6 + 1e-9
	for i, p := range res.Toolpath.Points {
		if dev := math.Abs(math.Hypot(p.X, p.Y) - nominal); dev > bound {
			t.Fatalf("point %d deviates %v from nominal, bound %v", i, dev, bound)
		}
	}
}

func TestGenerateBandDeterministic(t *testing.T) {
	spec := fastBandSpec()
	spec.BackText = "WORLD"
	cfg := DefaultConfig()
	font := testFont(t)

	a, err := GenerateBand(spec, cfg, font, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateBand(spec, cfg, font, WithWorkers(8))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Toolpath, b.Toolpath); diff != "" {
		t.Errorf("toolpath differs between runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(a.Stream, b.Stream); diff != "" {
		t.Errorf("stream differs between runs (-first +second):\n%s", diff)
	}
}

func TestGenerateBandNoText(t *testing.T) {
	spec := fastBandSpec()
	spec.FrontText, spec.BackText, spec.FontSizeMM = "", "", 0

	res, err := GenerateBand(spec, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("GenerateBand() without font error = %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("plain band produced %d warnings", len(res.Warnings))
	}
}

func TestGenerateBandErrors(t *testing.T) {
	cfg := DefaultConfig()
	font := testFont(t)

	t.Run("invalid spec", func(t *testing.T) {
		spec := fastBandSpec()
		spec.CircumferenceMM = 20
		var ce *ConfigError
		if _, err := GenerateBand(spec, cfg, font); !errors.As(err, &ce) {
			t.Errorf("error = %v, want *ConfigError", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := cfg
		bad.LayerHeightMM = 0
		var ce *ConfigError
		if _, err := GenerateBand(fastBandSpec(), bad, font); !errors.As(err, &ce) {
			t.Errorf("error = %v, want *ConfigError", err)
		}
	})

	t.Run("text without font", func(t *testing.T) {
		var ce *ConfigError
		if _, err := GenerateBand(fastBandSpec(), cfg, nil); !errors.As(err, &ce) {
			t.Errorf("error = %v, want *ConfigError", err)
		}
	})
}

func TestGenerateBandMissingGlyphWarns(t *testing.T) {
	spec := fastBandSpec()
	spec.FrontText = "OK世"

	res, err := GenerateBand(spec, DefaultConfig(), testFont(t))
	if err != nil {
		t.Fatalf("GenerateBand() error = %v", err)
	}
	if len(res.Warnings) == 0 {
		t.Error("unmapped rune produced no warning")
	}
}
