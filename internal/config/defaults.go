package config

import "time"

// Default returns the configuration observed on the published archive chart:
//   - 3000x900px canvas with 10px margins
//   - articles from 2006 on with more than 50 words
//   - bands stacked top to bottom: both [50,150], keyword one [150,250], keyword two [250,350]
//   - 100ms grace after leaving a mark, 10ms after leaving the tooltip
func Default() Config {
	return Config{
		Layout: Layout{
			Width:        3000,
			Height:       900,
			MarginTop:    10,
			MarginBottom: 10,
			MarginLeft:   10,
			MarginRight:  10,
			Background:   "#0b0028",
			FontFamily:   "Arial, sans-serif",
			TextColor:    "#ffffff",
		},
		Filter: Filter{
			MinYear:      2006,
			MinWordCount: 50,
		},
		Scales: Scales{
			RadiusMin:  1.5,
			RadiusMax:  6,
			Default:    Range{Top: 350, Bottom: 700},
			Both:       Range{Top: 50, Bottom: 150},
			KeywordOne: Range{Top: 150, Bottom: 250},
			KeywordTwo: Range{Top: 250, Bottom: 350},
		},
		Palette: Palette{
			Default:    ColorPair{Start: "#4dff36", End: "#4dff36"},
			Both:       ColorPair{Start: "#ffc2ec", End: "#ff47c5"},
			KeywordOne: ColorPair{Start: "#bdffb4", End: "#4dff36"},
			KeywordTwo: ColorPair{Start: "#bdffb4", End: "#4dff36"},
		},
		Opacity: Opacity{
			Baseline:  0.7,
			Highlight: 0.8,
			Dimmed:    0.25,
		},
		Hover: Hover{
			MarkGrace:    100 * time.Millisecond,
			TooltipGrace: 10 * time.Millisecond,
		},
		Tooltip: Tooltip{
			URLPrefix:  "https://svalbardposten.no/",
			DateLayout: "02.01.2006",
			OffsetX:    15,
			OffsetY:    15,
		},
		Axis: Axis{
			TickTop:    710,
			TickBottom: 720,
			LabelY:     740,
			FontSize:   12,
		},
		Legend: Legend{
			Show:       true,
			SmallWords: 100,
			LargeWords: 1000,
			X:          40,
			SmallY:     830,
			LargeY:     790,
		},
		Log: Log{
			Level:  "info",
			Format: "auto",
		},
		Serve: Serve{
			Bind: "127.0.0.1:8088",
		},
	}
}
