package bandforge

// smoothstep is the cubic Hermite blend t²(3−2t) clamped to [0, 1]. Its
// derivative is zero at both ends, so the blend joins the flat regions
// on either side with continuous value and slope.
func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// easeProfile returns the per-sample amplitude factor: 0 at the first
// sample, blending up to 1 over easeIn samples, holding 1, then blending
// back to 0 over the final easeOut samples. A discontinuity in value or
// slope here would print as a visible seam or a velocity jump, hence
// smoothstep.
//
// Window sizes are clamped so the two blends never overlap.
func easeProfile(n, easeIn, easeOut int) []float64 {
	if easeIn < 0 {
		easeIn = 0
	}
	if easeOut < 0 {
		easeOut = 0
	}
	if easeIn+easeOut > n-1 && easeIn+easeOut > 0 {
		// Scale both windows down proportionally to fit.
		scale := float64(n-1) / float64(easeIn+easeOut)
		easeIn = int(float64(easeIn) * scale)
		easeOut = int(float64(easeOut) * scale)
	}

	prof := make([]float64, n)
	for i := range n {
		f := 1.0
		if easeIn > 0 && i < easeIn {
			f = smoothstep(float64(i) / float64(easeIn))
		}
		if easeOut > 0 && i > n-1-easeOut {
			g := smoothstep(float64(n-1-i) / float64(easeOut))
			if g < f {
				f = g
			}
		}
		prof[i] = f
	}
	return prof
}
