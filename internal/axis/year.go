// Package axis derives the year ticks of the time axis.
package axis

import (
	"time"

	"archive2svg/internal/scale"
)

// Tick is one labelled year position.
type Tick struct {
	Year int
	X    float64
}

// Years returns one tick per calendar year from the first to the last year
// of the time scale's data extent, inclusive, placed at January 1st of that
// year. The first tick may fall left of the range when the data starts after
// January 1st.
func Years(s scale.Time) []Tick {
	start, end := s.Extent()
	loc := start.Location()
	ticks := make([]Tick, 0, end.Year()-start.Year()+1)
	for year := start.Year(); year <= end.Year(); year++ {
		ticks = append(ticks, Tick{
			Year: year,
			X:    s.At(time.Date(year, time.January, 1, 0, 0, 0, 0, loc)),
		})
	}
	return ticks
}
