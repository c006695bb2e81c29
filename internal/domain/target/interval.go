package target

import (
	"fmt"
	"math"
)

// Interval is a one-dimensional bound pair. Either end may be infinite.
type Interval struct {
	lower float64
	upper float64
}

// Unbounded creates the interval (-inf, +inf).
func Unbounded() Interval {
	return Interval{lower: math.Inf(-1), upper: math.Inf(1)}
}

// NewInterval validates and creates an interval.
func NewInterval(lower, upper float64) (Interval, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Interval{}, fmt.Errorf("interval bounds must not be NaN")
	}
	if lower >= upper {
		return Interval{}, fmt.Errorf("interval lower bound %g must be below upper bound %g", lower, upper)
	}
	return Interval{lower: lower, upper: upper}, nil
}

// Lower returns the lower bound.
func (i Interval) Lower() float64 { return i.lower }

// Upper returns the upper bound.
func (i Interval) Upper() float64 { return i.upper }

// IsClosed reports whether both bounds are finite.
func (i Interval) IsClosed() bool {
	return !math.IsInf(i.lower, 0) && !math.IsInf(i.upper, 0)
}

// IsHalfOpen reports whether exactly one bound is finite.
func (i Interval) IsHalfOpen() bool {
	return math.IsInf(i.lower, 0) != math.IsInf(i.upper, 0)
}

// Center returns the midpoint of a closed interval.
func (i Interval) Center() float64 {
	return (i.lower + i.upper) / 2
}

// Contains reports whether x lies within the interval.
func (i Interval) Contains(x float64) bool {
	return x >= i.lower && x <= i.upper
}
