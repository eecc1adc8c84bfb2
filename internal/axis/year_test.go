package axis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archive2svg/internal/scale"
)

func TestYears(t *testing.T) {
	start := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC)
	s := scale.NewTime(start, end, 10, 2990)

	ticks := Years(s)
	require.Len(t, ticks, 4)
	assert.Equal(t, 2010, ticks[0].Year)
	assert.Equal(t, 2013, ticks[3].Year)
	assert.InDelta(t, 10, ticks[0].X, 1e-9)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i].X, ticks[i-1].X)
		assert.LessOrEqual(t, ticks[i].X, 2990.0)
	}
}

func TestYearsCoversEveryYearInclusive(t *testing.T) {
	start := time.Date(2006, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2008, 5, 1, 0, 0, 0, 0, time.UTC)
	s := scale.NewTime(start, end, 10, 2990)

	ticks := Years(s)
	require.Len(t, ticks, 3)
	assert.Equal(t, []int{2006, 2007, 2008}, []int{ticks[0].Year, ticks[1].Year, ticks[2].Year})
	assert.Less(t, ticks[0].X, 10.0, "Jan 1 of the first year precedes the data")
	assert.InDelta(t, s.At(time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)), ticks[1].X, 1e-9)
}

func TestYearsSingleInstant(t *testing.T) {
	when := time.Date(2015, 3, 3, 0, 0, 0, 0, time.UTC)
	ticks := Years(scale.NewTime(when, when, 10, 2990))
	require.Len(t, ticks, 1)
	assert.Equal(t, 2015, ticks[0].Year)
}
