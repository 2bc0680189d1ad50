package plot

import "math"

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f >= 7.07: // sqrt(50)
		return 10 * mag
	case f >= 3.16: // sqrt(10)
		return 5 * mag
	case f >= 1.41: // sqrt(2)
		return 2 * mag
	default:
		return mag
	}
}

// step-aligned indices; the epsilon absorbs float noise like 0.30000000000000004
func ceilDiv(v, step float64) int  { return int(math.Ceil(v/step - 1e-9)) }
func floorDiv(v, step float64) int { return int(math.Floor(v/step + 1e-9)) }
