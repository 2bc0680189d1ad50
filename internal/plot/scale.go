package plot

// Linear maps a numeric domain onto an output range, like a chart axis.
type Linear struct {
	D0, D1 float64 // domain
	R0, R1 float64 // range
}

// NewLinear returns the scale mapping [d0,d1] onto [r0,r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map projects a domain value into the range. A degenerate domain maps
// everything to the middle of the range.
func (s Linear) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert projects a range value back into the domain.
func (s Linear) Invert(r float64) float64 {
	if s.R1 == s.R0 {
		return (s.D0 + s.D1) / 2
	}
	return s.D0 + (r-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

// Ticks returns about n evenly spaced "nice" domain values (step 1, 2 or 5
// times a power of ten), inclusive of the domain ends when they land on a step.
func (s Linear) Ticks(n int) []float64 {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	if n <= 0 || lo == hi {
		return []float64{lo}
	}
	step := niceStep((hi - lo) / float64(n))
	start := ceilDiv(lo, step)
	stop := floorDiv(hi, step)
	out := make([]float64, 0, stop-start+1)
	for i := start; i <= stop; i++ {
		out = append(out, float64(i)*step)
	}
	return out
}
