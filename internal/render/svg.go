// Package render draws projected marks, the year axis and the size legend
// as an SVG document, and builds tooltip payloads. It only formats what the
// engine computed; it makes no placement decisions.
package render

import (
	"fmt"
	"strings"

	"archive2svg/internal/axis"
	"archive2svg/internal/config"
	"archive2svg/internal/mark"
)

// Chart is everything drawn in one render pass.
type Chart struct {
	Width   int // viewport width; 0 means layout.width
	Marks   []mark.Mark
	Ticks   []axis.Tick
	Legend  *Legend
	Caption string // intersection caption, empty when fewer than two keywords are selected
}

// SVG renders the chart as a standalone SVG document.
func SVG(chart Chart, cfg config.Config) string {
	var svg strings.Builder
	width := chart.Width
	if width <= 0 {
		width = cfg.Layout.Width
	}
	writeHeader(&svg, width, cfg)

	if chart.Caption != "" {
		svg.WriteString(fmt.Sprintf(`<text class="caption" x="%d" y="%d">%s</text>`+"\n",
			cfg.Layout.MarginLeft+20, cfg.Layout.MarginTop+20, escapeXML(chart.Caption)))
	}

	drawYearAxis(&svg, chart.Ticks, cfg)

	svg.WriteString(`<g class="marks">` + "\n")
	for _, m := range chart.Marks {
		drawMark(&svg, m)
	}
	svg.WriteString("</g>\n")

	if chart.Legend != nil {
		drawLegend(&svg, *chart.Legend, cfg)
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// Placeholder renders an empty chart carrying a message, used when the
// dataset has nothing to draw.
func Placeholder(message string, cfg config.Config) string {
	var svg strings.Builder
	writeHeader(&svg, cfg.Layout.Width, cfg)
	svg.WriteString(fmt.Sprintf(`<text class="placeholder" x="%d" y="%d" text-anchor="middle">%s</text>`+"\n",
		cfg.Layout.Width/2, cfg.Layout.Height/2, escapeXML(message)))
	svg.WriteString("</svg>\n")
	return svg.String()
}

func writeHeader(svg *strings.Builder, width int, cfg config.Config) {
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.mark { cursor: pointer; transition: cx 1s, cy 1s, r 1s, fill-opacity 1s; }
.year-label { font-family: %s; font-size: %dpx; fill: %s; }
.legend-text { font-family: %s; font-size: 12px; fill: %s; }
.caption { font-family: %s; font-size: 22px; fill: #ff47c5; }
.placeholder { font-family: %s; font-size: 16px; fill: %s; }
</style>
</defs>
`, width, cfg.Layout.Height, cfg.Layout.Background,
		cfg.Layout.FontFamily, cfg.Axis.FontSize, cfg.Layout.TextColor,
		cfg.Layout.FontFamily, cfg.Layout.TextColor,
		cfg.Layout.FontFamily,
		cfg.Layout.FontFamily, cfg.Layout.TextColor))
}

// drawMark draws one article circle. data-id lets a host map pointer events
// back to the article.
func drawMark(svg *strings.Builder, m mark.Mark) {
	svg.WriteString(fmt.Sprintf(`<circle class="mark" data-id="%s" data-class="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
		escapeXML(m.ID), m.Class, m.X, m.Y, m.R, m.Color.Hex(), m.Opacity))
}

func drawYearAxis(svg *strings.Builder, ticks []axis.Tick, cfg config.Config) {
	svg.WriteString(`<g class="year-axis">` + "\n")
	for _, t := range ticks {
		svg.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%d" x2="%.2f" y2="%d" stroke="%s" stroke-width="0.6"/>`+"\n",
			t.X, cfg.Axis.TickTop, t.X, cfg.Axis.TickBottom, cfg.Layout.TextColor))
		svg.WriteString(fmt.Sprintf(`<text class="year-label" x="%.2f" y="%d" text-anchor="middle">%d</text>`+"\n",
			t.X, cfg.Axis.LabelY, t.Year))
	}
	svg.WriteString("</g>\n")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// escapeXML escapes text and attribute values for the SVG document.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
