package scale

import "time"

// degenerateSpan is the width a single-instant time domain is widened to.
const degenerateSpan = 24 * time.Hour

// Time maps dates linearly onto a pixel range by elapsed time.
type Time struct {
	d0, d1 time.Time
	e0, e1 time.Time // data extent before any widening
	r0, r1 float64
}

// NewTime builds a time scale from [d0, d1] to [r0, r1]. When every article
// shares one instant the domain is widened by half a day on each side, so
// the instant lands in the middle of the range.
func NewTime(d0, d1 time.Time, r0, r1 float64) Time {
	e0, e1 := d0, d1
	if !d1.After(d0) {
		mid := d0
		d0 = mid.Add(-degenerateSpan / 2)
		d1 = mid.Add(degenerateSpan / 2)
	}
	return Time{d0: d0, d1: d1, e0: e0, e1: e1, r0: r0, r1: r1}
}

// At returns the x position of t.
func (s Time) At(t time.Time) float64 {
	total := float64(s.d1.Sub(s.d0))
	return s.r0 + float64(t.Sub(s.d0))/total*(s.r1-s.r0)
}

// Domain returns the effective domain.
func (s Time) Domain() (time.Time, time.Time) { return s.d0, s.d1 }

// Extent returns the dates the scale was built from.
func (s Time) Extent() (time.Time, time.Time) { return s.e0, s.e1 }

// Range returns the output range.
func (s Time) Range() (float64, float64) { return s.r0, s.r1 }
