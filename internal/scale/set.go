// Package scale builds the pure mappings from article data to visual
// properties: publication date to x, word count to radius, vertical position
// and color. A Set is immutable once built and shared by every mark of a
// render pass.
package scale

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"archive2svg/internal/dataset"
)

// ErrBandOverlap is returned when keyword bands share vertical pixels.
var ErrBandOverlap = errors.New("keyword bands overlap")

// Band is a vertical pixel range; Top < Bottom. Vertical scales map the
// largest word count to Top.
type Band struct {
	Top, Bottom float64
}

// Palette holds the [start, end] colors of each color scale.
type Palette struct {
	Default    [2]RGB
	Both       [2]RGB
	KeywordOne [2]RGB
	KeywordTwo [2]RGB
}

// Options configures the Scale Factory.
type Options struct {
	MarginLeft float64
	Radius     [2]float64
	Default    Band
	Both       Band
	KeywordOne Band
	KeywordTwo Band
	Palette    Palette
}

// Validate checks that bands are well formed and stacked top to bottom as
// both, keyword one, keyword two without overlapping.
func (o Options) Validate() error {
	bands := []struct {
		name string
		b    Band
	}{
		{"default", o.Default},
		{"both", o.Both},
		{"keyword one", o.KeywordOne},
		{"keyword two", o.KeywordTwo},
	}
	for _, n := range bands {
		if n.b.Top >= n.b.Bottom {
			return fmt.Errorf("%s band [%g, %g] must have top above bottom", n.name, n.b.Top, n.b.Bottom)
		}
	}
	if o.Both.Bottom > o.KeywordOne.Top || o.KeywordOne.Bottom > o.KeywordTwo.Top {
		return fmt.Errorf("%w: both [%g, %g], keyword one [%g, %g], keyword two [%g, %g]", ErrBandOverlap,
			o.Both.Top, o.Both.Bottom, o.KeywordOne.Top, o.KeywordOne.Bottom, o.KeywordTwo.Top, o.KeywordTwo.Bottom)
	}
	return nil
}

// Extent is the data domain every scale of a Set is derived from.
type Extent struct {
	MinDate, MaxDate   time.Time
	MinWords, MaxWords float64
}

// ExtentOf computes the date and word-count extent of a dataset.
func ExtentOf(ds *dataset.Dataset) (Extent, error) {
	if ds.Len() == 0 {
		return Extent{}, dataset.ErrEmptyDataset
	}
	counts := make([]float64, len(ds.Articles))
	ext := Extent{MinDate: ds.Articles[0].Published, MaxDate: ds.Articles[0].Published}
	for i, a := range ds.Articles {
		counts[i] = float64(a.WordCount)
		if a.Published.Before(ext.MinDate) {
			ext.MinDate = a.Published
		}
		if a.Published.After(ext.MaxDate) {
			ext.MaxDate = a.Published
		}
	}
	ext.MinWords = floats.Min(counts)
	ext.MaxWords = floats.Max(counts)
	return ext, nil
}

// Set is the full collection of scales for one (dataset, viewport width).
type Set struct {
	Extent Extent
	Width  float64

	Time   Time
	Radius Sqrt

	Default    Log
	Both       Log
	KeywordOne Log
	KeywordTwo Log

	DefaultColor    Color
	BothColor       Color
	KeywordOneColor Color
	KeywordTwoColor Color
}

// Build derives every scale from the dataset extent and viewport width.
func Build(ds *dataset.Dataset, width float64, opts Options) (*Set, error) {
	ext, err := ExtentOf(ds)
	if err != nil {
		return nil, err
	}
	return BuildExtent(ext, width, opts)
}

// BuildExtent derives every scale from a precomputed extent.
func BuildExtent(ext Extent, width float64, opts Options) (*Set, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if width <= 2*opts.MarginLeft {
		return nil, fmt.Errorf("viewport width %g leaves no room between margins of %g", width, opts.MarginLeft)
	}

	set := &Set{
		Extent: ext,
		Width:  width,
		Time:   NewTime(ext.MinDate, ext.MaxDate, opts.MarginLeft, width-opts.MarginLeft),
		Radius: NewSqrt(ext.MinWords, ext.MaxWords, opts.Radius[0], opts.Radius[1]),
	}

	vertical := []struct {
		band Band
		out  *Log
	}{
		{opts.Default, &set.Default},
		{opts.Both, &set.Both},
		{opts.KeywordOne, &set.KeywordOne},
		{opts.KeywordTwo, &set.KeywordTwo},
	}
	for _, v := range vertical {
		s, err := NewLog(ext.MinWords, ext.MaxWords, v.band.Bottom, v.band.Top)
		if err != nil {
			return nil, fmt.Errorf("vertical scale: %w", err)
		}
		*v.out = s
	}

	colors := []struct {
		pair [2]RGB
		out  *Color
	}{
		{opts.Palette.Default, &set.DefaultColor},
		{opts.Palette.Both, &set.BothColor},
		{opts.Palette.KeywordOne, &set.KeywordOneColor},
		{opts.Palette.KeywordTwo, &set.KeywordTwoColor},
	}
	for _, c := range colors {
		s, err := NewColor(ext.MinWords, ext.MaxWords, c.pair[0], c.pair[1])
		if err != nil {
			return nil, fmt.Errorf("color scale: %w", err)
		}
		*c.out = s
	}
	return set, nil
}
