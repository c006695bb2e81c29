package target

import "math"

// TransformMode selects the normalization applied to raw target values.
type TransformMode string

// Transform mode constants.
const (
	// Linear maps bounded Max/Min values onto [0, 1].
	Linear TransformMode = "LINEAR"
	// Triangular peaks at the bound center and falls to 0 at the bounds.
	Triangular TransformMode = "TRIANGULAR"
	// Bell is a Gaussian centered on the bound center.
	Bell TransformMode = "BELL"
)

func (tm TransformMode) compatibleWith(m Mode) bool {
	switch m {
	case Max, Min:
		return tm == Linear
	case Match:
		return tm == Triangular || tm == Bell
	default:
		return false
	}
}

func defaultTransformMode(m Mode) TransformMode {
	if m == Match {
		return Triangular
	}
	return Linear
}

// Transform normalizes raw target values.
// Bounded targets apply their transform mode; unbounded Min targets are
// negated and unbounded Max targets pass through unchanged.
func (t Target) Transform(values []float64) []float64 {
	out := make([]float64, len(values))
	if t.bounds.IsClosed() {
		lower, upper := t.bounds.Lower(), t.bounds.Upper()
		for i, v := range values {
			switch t.transformMode {
			case Triangular:
				out[i] = triangularTransform(v, lower, upper)
			case Bell:
				out[i] = bellTransform(v, lower, upper)
			default:
				out[i] = linearTransform(v, lower, upper, t.mode == Min)
			}
		}
		return out
	}
	for i, v := range values {
		if t.mode == Min {
			out[i] = -v
		} else {
			out[i] = v
		}
	}
	return out
}

func linearTransform(v, lower, upper float64, descending bool) float64 {
	var res float64
	if descending {
		res = (upper - v) / (upper - lower)
	} else {
		res = (v - lower) / (upper - lower)
	}
	return clamp01(res)
}

func triangularTransform(v, lower, upper float64) float64 {
	mid := lower + (upper-lower)/2
	var res float64
	if v < mid {
		res = (v - lower) / (mid - lower)
	} else {
		res = (upper - v) / (upper - mid)
	}
	return clamp01(res)
}

// bellTransform uses sigma = width/6 so the bounds sit three standard
// deviations from the center.
func bellTransform(v, lower, upper float64) float64 {
	mean := (lower + upper) / 2
	sigma := (upper - lower) / 6
	d := v - mean
	return math.Exp(-d * d / (2 * sigma * sigma))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
