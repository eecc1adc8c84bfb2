package scale

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveDomain is returned when a log scale domain reaches zero or below.
var ErrNonPositiveDomain = errors.New("log scale domain must be positive")

// degenerate widens a zero-width domain [v, v] to a width-1 domain centred
// on v, so the value maps to the middle of the range instead of NaN.
func degenerate(d0, d1 float64) (float64, float64) {
	if d0 != d1 {
		return d0, d1
	}
	return d0 - 0.5, d1 + 0.5
}

// interpolate maps t in domain units [t0, t1] onto [r0, r1].
func interpolate(t, t0, t1, r0, r1 float64) float64 {
	return r0 + (t-t0)/(t1-t0)*(r1-r0)
}

// Sqrt is a square-root scale: equal steps in the domain give equal steps
// in the square of the output, which keeps circle areas proportional.
type Sqrt struct {
	d0, d1 float64
	r0, r1 float64
}

// NewSqrt builds a sqrt scale from domain [d0, d1] to range [r0, r1].
func NewSqrt(d0, d1, r0, r1 float64) Sqrt {
	d0, d1 = degenerate(d0, d1)
	return Sqrt{d0: d0, d1: d1, r0: r0, r1: r1}
}

func signedSqrt(v float64) float64 {
	if v < 0 {
		return -math.Sqrt(-v)
	}
	return math.Sqrt(v)
}

// At returns the scaled value of v.
func (s Sqrt) At(v float64) float64 {
	return interpolate(signedSqrt(v), signedSqrt(s.d0), signedSqrt(s.d1), s.r0, s.r1)
}

// Domain returns the effective domain.
func (s Sqrt) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the output range.
func (s Sqrt) Range() (float64, float64) { return s.r0, s.r1 }

// Log is a base-10 logarithmic scale.
type Log struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLog builds a log scale from domain [d0, d1] to range [r0, r1]. A
// degenerate domain is widened by 0.5 on each side; if that would reach zero
// the lower bound is halved instead.
func NewLog(d0, d1, r0, r1 float64) (Log, error) {
	if d0 <= 0 || d1 <= 0 {
		return Log{}, fmt.Errorf("%w: [%g, %g]", ErrNonPositiveDomain, d0, d1)
	}
	if d0 == d1 {
		v := d0
		d0, d1 = degenerate(v, v)
		if d0 <= 0 {
			d0 = v / 2
		}
	}
	return Log{d0: d0, d1: d1, r0: r0, r1: r1}, nil
}

// At returns the scaled value of v. Non-positive inputs map to the start of
// the range.
func (s Log) At(v float64) float64 {
	if v <= 0 {
		return s.r0
	}
	return interpolate(math.Log10(v), math.Log10(s.d0), math.Log10(s.d1), s.r0, s.r1)
}

// Domain returns the effective domain.
func (s Log) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the output range.
func (s Log) Range() (float64, float64) { return s.r0, s.r1 }
