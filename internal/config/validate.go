package config

import (
	"errors"
	"fmt"

	"archive2svg/internal/scale"
)

// ErrInvalidRange indicates a vertical range whose top is not above its bottom.
var ErrInvalidRange = errors.New("invalid vertical range")

// Validate checks that the configuration can produce a chart.
func (c Config) Validate() error {
	if c.Layout.Width <= 2*c.Layout.MarginLeft {
		return fmt.Errorf("layout.width %d leaves no room between margins of %d", c.Layout.Width, c.Layout.MarginLeft)
	}
	if c.Layout.Height <= 0 {
		return fmt.Errorf("layout.height must be positive, got %d", c.Layout.Height)
	}
	if c.Filter.MinWordCount < 0 {
		return fmt.Errorf("filter.min_word_count must not be negative, got %d", c.Filter.MinWordCount)
	}
	if c.Scales.RadiusMin < 0 || c.Scales.RadiusMax < c.Scales.RadiusMin {
		return fmt.Errorf("scales: radius range [%g, %g] is invalid", c.Scales.RadiusMin, c.Scales.RadiusMax)
	}

	named := []struct {
		name string
		r    Range
	}{
		{"default", c.Scales.Default},
		{"both", c.Scales.Both},
		{"keyword_one", c.Scales.KeywordOne},
		{"keyword_two", c.Scales.KeywordTwo},
	}
	for _, n := range named {
		if n.r.Top >= n.r.Bottom {
			return fmt.Errorf("scales.%s [%g, %g]: %w", n.name, n.r.Top, n.r.Bottom, ErrInvalidRange)
		}
	}
	if c.Scales.Both.Bottom > c.Scales.KeywordOne.Top {
		return fmt.Errorf("scales.both ends at %g below keyword_one start %g: %w",
			c.Scales.Both.Bottom, c.Scales.KeywordOne.Top, scale.ErrBandOverlap)
	}
	if c.Scales.KeywordOne.Bottom > c.Scales.KeywordTwo.Top {
		return fmt.Errorf("scales.keyword_one ends at %g below keyword_two start %g: %w",
			c.Scales.KeywordOne.Bottom, c.Scales.KeywordTwo.Top, scale.ErrBandOverlap)
	}

	if _, err := c.parsePalette(); err != nil {
		return err
	}

	tiers := []struct {
		name     string
		v        float64
		min, max float64
	}{
		{"baseline", c.Opacity.Baseline, 0.6, 0.7},
		{"highlight", c.Opacity.Highlight, 0.75, 0.8},
		{"dimmed", c.Opacity.Dimmed, 0.08, 0.25},
	}
	for _, t := range tiers {
		if t.v < t.min || t.v > t.max {
			return fmt.Errorf("opacity.%s must be within [%g, %g], got %g", t.name, t.min, t.max, t.v)
		}
	}

	if c.Hover.MarkGrace < 0 || c.Hover.TooltipGrace < 0 {
		return fmt.Errorf("hover grace periods must not be negative")
	}
	return nil
}

// ScaleOptions converts the scale and palette sections into scale factory options.
func (c Config) ScaleOptions() (scale.Options, error) {
	palette, err := c.parsePalette()
	if err != nil {
		return scale.Options{}, err
	}
	return scale.Options{
		MarginLeft: float64(c.Layout.MarginLeft),
		Radius:     [2]float64{c.Scales.RadiusMin, c.Scales.RadiusMax},
		Default:    scale.Band{Top: c.Scales.Default.Top, Bottom: c.Scales.Default.Bottom},
		Both:       scale.Band{Top: c.Scales.Both.Top, Bottom: c.Scales.Both.Bottom},
		KeywordOne: scale.Band{Top: c.Scales.KeywordOne.Top, Bottom: c.Scales.KeywordOne.Bottom},
		KeywordTwo: scale.Band{Top: c.Scales.KeywordTwo.Top, Bottom: c.Scales.KeywordTwo.Bottom},
		Palette:    palette,
	}, nil
}

func (c Config) parsePalette() (scale.Palette, error) {
	var p scale.Palette
	targets := []struct {
		name string
		in   ColorPair
		out  *[2]scale.RGB
	}{
		{"default", c.Palette.Default, &p.Default},
		{"both", c.Palette.Both, &p.Both},
		{"keyword_one", c.Palette.KeywordOne, &p.KeywordOne},
		{"keyword_two", c.Palette.KeywordTwo, &p.KeywordTwo},
	}
	for _, t := range targets {
		start, err := scale.ParseColor(t.in.Start)
		if err != nil {
			return scale.Palette{}, fmt.Errorf("palette.%s.start: %w", t.name, err)
		}
		end, err := scale.ParseColor(t.in.End)
		if err != nil {
			return scale.Palette{}, fmt.Errorf("palette.%s.end: %w", t.name, err)
		}
		*t.out = [2]scale.RGB{start, end}
	}
	return p, nil
}
