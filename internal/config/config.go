// Package config loads the YAML configuration that drives archive chart
// rendering: viewport layout, normalization thresholds, scale ranges, the band
// color palette, opacity tiers and hover grace periods.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Range is a vertical pixel range. Top is the smaller y value (higher on
// screen); scales map the largest word count to Top and the smallest to Bottom.
type Range struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// ColorPair holds the two endpoint colors of a color scale as hex codes.
type ColorPair struct {
	Start string `yaml:"start"` // Color used for the smallest word count (e.g. "#bdffb4")
	End   string `yaml:"end"`   // Color used for the largest word count
}

// Layout describes the chart viewport.
type Layout struct {
	Width        int    `yaml:"width"`         // Total SVG width in pixels
	Height       int    `yaml:"height"`        // Total SVG height in pixels
	MarginTop    int    `yaml:"margin_top"`    // Top margin in pixels
	MarginBottom int    `yaml:"margin_bottom"` // Bottom margin in pixels
	MarginLeft   int    `yaml:"margin_left"`   // Left margin in pixels, mirrored on the right edge of the time axis
	MarginRight  int    `yaml:"margin_right"`  // Right margin in pixels
	Background   string `yaml:"background"`    // SVG background color (hex color code)
	FontFamily   string `yaml:"font_family"`   // Font family for axis labels and captions
	TextColor    string `yaml:"text_color"`    // Color of axis labels and legend text
}

// Filter holds the Dataset Normalizer thresholds.
type Filter struct {
	MinYear      int `yaml:"min_year"`       // Articles published before this year are dropped
	MinWordCount int `yaml:"min_word_count"` // Articles must have strictly more words than this
}

// Scales holds the numeric ranges of the word-count driven scales.
type Scales struct {
	RadiusMin  float64 `yaml:"radius_min"`  // Radius of the shortest article in pixels
	RadiusMax  float64 `yaml:"radius_max"`  // Radius of the longest article in pixels
	Default    Range   `yaml:"default"`     // Unbanded vertical range
	Both       Range   `yaml:"both"`        // Band for articles matching both keywords
	KeywordOne Range   `yaml:"keyword_one"` // Band for articles matching only keyword one
	KeywordTwo Range   `yaml:"keyword_two"` // Band for articles matching only keyword two
}

// Palette holds the color pair of each color scale.
type Palette struct {
	Default    ColorPair `yaml:"default"`
	Both       ColorPair `yaml:"both"`
	KeywordOne ColorPair `yaml:"keyword_one"`
	KeywordTwo ColorPair `yaml:"keyword_two"`
}

// Opacity holds the three opacity tiers applied by the band classifier.
type Opacity struct {
	Baseline  float64 `yaml:"baseline"`  // No keyword filter active
	Highlight float64 `yaml:"highlight"` // Article matches an active filter
	Dimmed    float64 `yaml:"dimmed"`    // Filter active but article matches none
}

// Hover holds the dismiss grace periods of the hover controller.
type Hover struct {
	MarkGrace    time.Duration `yaml:"mark_grace"`    // Delay after leaving a mark before the tooltip closes
	TooltipGrace time.Duration `yaml:"tooltip_grace"` // Delay after leaving the tooltip before it closes
}

// Tooltip configures tooltip content.
type Tooltip struct {
	URLPrefix  string `yaml:"url_prefix"`  // Prepended to the article's published_url
	DateLayout string `yaml:"date_layout"` // Go time layout for the tooltip date line
	OffsetX    int    `yaml:"offset_x"`    // Horizontal offset from the pointer in pixels
	OffsetY    int    `yaml:"offset_y"`    // Vertical offset from the pointer in pixels
}

// Axis configures the year axis.
type Axis struct {
	TickTop    int `yaml:"tick_top"`    // y of the top of each year tick
	TickBottom int `yaml:"tick_bottom"` // y of the bottom of each year tick
	LabelY     int `yaml:"label_y"`     // Baseline y of the year labels
	FontSize   int `yaml:"font_size"`   // Font size of the year labels
}

// Legend configures the circle size legend.
type Legend struct {
	Show       bool `yaml:"show"`        // Whether to draw the size legend
	SmallWords int  `yaml:"small_words"` // Word count of the small sample circle
	LargeWords int  `yaml:"large_words"` // Word count of the large sample circle
	X          int  `yaml:"x"`           // x of both sample circles
	SmallY     int  `yaml:"small_y"`     // y of the small sample circle
	LargeY     int  `yaml:"large_y"`     // y of the large sample circle
}

// Log configures the slog logger.
type Log struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn" or "error"
	Format string `yaml:"format"` // "console", "json" or "auto"
}

// Serve configures the interactive HTTP host.
type Serve struct {
	Bind string `yaml:"bind"` // Listen address, e.g. "127.0.0.1:8088"
}

// Config represents the complete configuration for archive chart generation.
// It maps directly onto the YAML file; fields missing from the file keep their
// default values.
type Config struct {
	Layout  Layout  `yaml:"layout"`
	Filter  Filter  `yaml:"filter"`
	Scales  Scales  `yaml:"scales"`
	Palette Palette `yaml:"palette"`
	Opacity Opacity `yaml:"opacity"`
	Hover   Hover   `yaml:"hover"`
	Tooltip Tooltip `yaml:"tooltip"`
	Axis    Axis    `yaml:"axis"`
	Legend  Legend  `yaml:"legend"`
	Log     Log     `yaml:"log"`
	Serve   Serve   `yaml:"serve"`
}

// Load reads configuration from a YAML file, or returns the defaults if no
// file is specified. Values in the file overlay the defaults and the result
// is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}
