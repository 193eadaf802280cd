package bandforge

import "runtime"

// Option configures band and grid generation.
// Use functional options to customize behavior.
//
// Example:
//
//	asm, err := bandforge.NewAssembler(cfg, font, profiles,
//	    bandforge.WithWorkers(4),
//	    bandforge.WithEmbossGain(2.0))
type Option func(*genOptions)

// genOptions holds optional generation knobs.
type genOptions struct {
	workers          int
	embossGain       float64
	flattenTolerance float64
}

// defaultGenOptions returns the default generation options.
func defaultGenOptions() genOptions {
	return genOptions{
		workers:          runtime.GOMAXPROCS(0),
		embossGain:       1.6,
		flattenTolerance: 0.02,
	}
}

// WithWorkers sets the number of parallel workers used for per-band
// generation and for chunked polygon classification. Values below 1 are
// treated as 1.
func WithWorkers(n int) Option {
	return func(o *genOptions) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithEmbossGain sets the amplification factor K applied to the wiggle
// amplitude inside glyph regions. The modulated radial offset stays
// within amplitude·K for every sample. The default gain is 1.6.
func WithEmbossGain(k float64) Option {
	return func(o *genOptions) {
		if k > 0 {
			o.embossGain = k
		}
	}
}

// WithFlattenTolerance sets the maximum deviation, in millimeters,
// allowed when glyph outline curves are flattened to polygons. Smaller
// values produce more polygon vertices. The default is 0.02 mm.
func WithFlattenTolerance(tol float64) Option {
	return func(o *genOptions) {
		if tol > 0 {
			o.flattenTolerance = tol
		}
	}
}
