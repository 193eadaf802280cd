package bandforge

import "math"

// SampleStream is the ordered sample sequence of one band's spiral path,
// stored as parallel slices.
//
// Theta is the unwrapped total angle: it increases monotonically across
// the whole path and never resets, which is what keeps the 3D placement
// valid. Phase is the separately derived wrapped angle in [0, 2π), used
// only for surface and polygon lookups. The two are never collapsed into
// one field: wrapping Theta would break the monotonicity the path
// depends on.
type SampleStream struct {
	Theta  []float64
	Phase  []float64
	Height []float64
	Radius []float64

	// NominalRadius is circumference / 2π; Radius deviates from it by
	// the wiggle offset only.
	NominalRadius float64
}

// Len returns the number of samples.
func (s *SampleStream) Len() int { return len(s.Theta) }

// synthesizeSpiral produces the base helical sample sequence: n samples
// covering turns full revolutions, climbing linearly to height. Height
// is strictly increasing and Theta monotonically increasing; Radius
// starts at the nominal value for every sample.
func synthesizeSpiral(n int, turns, height, nominalRadius float64) *SampleStream {
	st := &SampleStream{
		Theta:         make([]float64, n),
		Phase:         make([]float64, n),
		Height:        make([]float64, n),
		Radius:        make([]float64, n),
		NominalRadius: nominalRadius,
	}
	angularStep := turns * 2 * math.Pi / float64(n-1)
	heightStep := height / float64(n-1)
	for i := range n {
		theta := float64(i) * angularStep
		st.Theta[i] = theta
		st.Phase[i] = math.Mod(theta, 2*math.Pi)
		st.Height[i] = float64(i) * heightStep
		st.Radius[i] = nominalRadius
	}
	return st
}
