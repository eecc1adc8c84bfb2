package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archive2svg/internal/scale"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.ScaleOptions()
	require.NoError(t, err)
	require.NoError(t, opts.Validate())
	assert.Equal(t, [2]float64{1.5, 6}, opts.Radius)
	assert.Equal(t, scale.Band{Top: 50, Bottom: 150}, opts.Both)
	assert.Equal(t, scale.RGB{R: 0xff, G: 0x47, B: 0xc5}, opts.Palette.Both[1])
}

func TestLoad(t *testing.T) {
	t.Run("NoPath", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("OverlaysDefaults", func(t *testing.T) {
		path := writeConfig(t, `
layout:
  width: 1200
filter:
  min_word_count: 100
hover:
  mark_grace: 250ms
palette:
  both:
    start: "#000"
    end: "#ffffff"
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 1200, cfg.Layout.Width)
		assert.Equal(t, 900, cfg.Layout.Height)
		assert.Equal(t, 100, cfg.Filter.MinWordCount)
		assert.Equal(t, 2006, cfg.Filter.MinYear)
		assert.Equal(t, 250*time.Millisecond, cfg.Hover.MarkGrace)
		assert.Equal(t, 10*time.Millisecond, cfg.Hover.TooltipGrace)
		assert.Equal(t, "#000", cfg.Palette.Both.Start)
		assert.Equal(t, "#bdffb4", cfg.Palette.KeywordOne.Start)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeConfig(t, "layout: [unterminated")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
	})

	t.Run("OverlappingBands", func(t *testing.T) {
		path := writeConfig(t, `
scales:
  both: {top: 50, bottom: 200}
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, scale.ErrBandOverlap)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"NarrowLayout", func(c *Config) { c.Layout.Width = 20 }, "layout.width"},
		{"ZeroHeight", func(c *Config) { c.Layout.Height = 0 }, "layout.height"},
		{"NegativeWordCount", func(c *Config) { c.Filter.MinWordCount = -1 }, "min_word_count"},
		{"InvertedRadius", func(c *Config) { c.Scales.RadiusMax = 1 }, "radius range"},
		{"InvertedRange", func(c *Config) { c.Scales.Default = Range{Top: 700, Bottom: 350} }, "scales.default"},
		{"BadColor", func(c *Config) { c.Palette.KeywordTwo.End = "green" }, "palette.keyword_two.end"},
		{"OpacityAboveOne", func(c *Config) { c.Opacity.Highlight = 1.5 }, "opacity.highlight"},
		{"BaselineBelowTier", func(c *Config) { c.Opacity.Baseline = 0.5 }, "opacity.baseline must be within [0.6, 0.7]"},
		{"HighlightBelowTier", func(c *Config) { c.Opacity.Highlight = 0.7 }, "opacity.highlight must be within [0.75, 0.8]"},
		{"DimmedAboveTier", func(c *Config) { c.Opacity.Dimmed = 0.3 }, "opacity.dimmed must be within [0.08, 0.25]"},
		{"DimmedBelowTier", func(c *Config) { c.Opacity.Dimmed = 0.05 }, "opacity.dimmed"},
		{"NegativeGrace", func(c *Config) { c.Hover.TooltipGrace = -time.Millisecond }, "grace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateInvertedRangeIsTyped(t *testing.T) {
	cfg := Default()
	cfg.Scales.KeywordTwo = Range{Top: 350, Bottom: 250}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidRange)
}

func TestValidateTierBounds(t *testing.T) {
	cfg := Default()
	cfg.Opacity = Opacity{Baseline: 0.6, Highlight: 0.75, Dimmed: 0.08}
	assert.NoError(t, cfg.Validate())
}

func TestValidateReportsFirstFailureInOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		cfg := Default()
		cfg.Palette.Default.Start = "nope"
		cfg.Palette.KeywordTwo.End = "green"
		cfg.Opacity.Baseline = 0.1
		cfg.Opacity.Dimmed = 0.9

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "palette.default.start")

		cfg.Palette = Default().Palette
		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opacity.baseline")
	}
}
