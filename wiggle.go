package bandforge

import (
	"math"
	"sync"

	"github.com/bandforge/bandforge/poly"
)

// modulate applies the sinusoidal radial wiggle to the stream, amplified
// by gain inside glyph polygons of the face each sample is looking at.
// ease holds the per-sample amplitude factor from easeProfile.
//
// For every sample |Radius − NominalRadius| ≤ amplitude·gain: the offset
// is amplitude·ease·sin(f·θ) with ease ≤ 1 and |sin| ≤ 1, optionally
// multiplied by gain.
//
// The glyph membership test is the batched classification from package
// poly, run over sample chunks on parallel workers; per-point
// classification is independent, so chunking does not alter results.
func modulate(st *SampleStream, front, back facePolygons, spec BandSpec, ease []float64, gain float64, workers int) {
	n := st.Len()
	amp := spec.WiggleAmplitudeMM
	freq := spec.WiggleFrequency

	var inside []bool
	if len(front.polys) > 0 || len(back.polys) > 0 {
		inside = classifyFaces(st, front, back, spec.CircumferenceMM, workers)
	}

	for i := range n {
		off := amp * ease[i] * math.Sin(freq*st.Theta[i])
		if inside != nil && inside[i] {
			off *= gain
		}
		st.Radius[i] = st.NominalRadius + off
	}
}

// classifyFaces marks the samples whose surface point lies inside a
// glyph polygon of the face the sample belongs to. Samples in the front
// half of each turn (cos phase ≥ 0) are tested against front polygons;
// the rest against the back polygons, in the back face's π-shifted
// surface coordinate.
func classifyFaces(st *SampleStream, front, back facePolygons, circumference float64, workers int) []bool {
	n := st.Len()
	mmPerRad := circumference / (2 * math.Pi)

	// Surface x coordinate of every sample for each face.
	xsFront := make([]float64, n)
	xsBack := make([]float64, n)
	for i, phase := range st.Phase {
		xsFront[i] = wrapPi(phase) * mmPerRad
		xsBack[i] = wrapPi(phase-math.Pi) * mmPerRad
	}

	insideFront := make([]bool, n)
	insideBack := make([]bool, n)

	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			if len(front.polys) > 0 {
				poly.ClassifyPoints(front.polys, xsFront[lo:hi], st.Height[lo:hi], insideFront[lo:hi])
			}
			if len(back.polys) > 0 {
				poly.ClassifyPoints(back.polys, xsBack[lo:hi], st.Height[lo:hi], insideBack[lo:hi])
			}
		}(lo, hi)
	}
	wg.Wait()

	inside := make([]bool, n)
	for i, phase := range st.Phase {
		if math.Cos(phase) >= 0 {
			inside[i] = insideFront[i]
		} else {
			inside[i] = insideBack[i]
		}
	}
	return inside
}

// wrapPi wraps an angle into [−π, π).
func wrapPi(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
