package render

import (
	"fmt"
	"math"
	"strings"

	"archive2svg/internal/config"
	"archive2svg/internal/scale"
)

// Legend shows two sample circle sizes.
type Legend struct {
	SmallWords  int
	LargeWords  int
	SmallRadius float64
	LargeRadius float64
	Color       scale.RGB
}

// NewLegend sizes the sample circles with the chart's radius scale. Sample
// counts outside the data extent are extrapolated and floored at zero.
func NewLegend(set *scale.Set, cfg config.Config) Legend {
	return Legend{
		SmallWords:  cfg.Legend.SmallWords,
		LargeWords:  cfg.Legend.LargeWords,
		SmallRadius: math.Max(0, set.Radius.At(float64(cfg.Legend.SmallWords))),
		LargeRadius: math.Max(0, set.Radius.At(float64(cfg.Legend.LargeWords))),
		Color:       set.DefaultColor.At(set.Extent.MaxWords),
	}
}

func drawLegend(svg *strings.Builder, l Legend, cfg config.Config) {
	x := cfg.Legend.X
	svg.WriteString(`<g class="size-legend">` + "\n")
	svg.WriteString(fmt.Sprintf(`<text class="legend-text" x="%d" y="%d">Article Length [words]</text>`+"\n",
		x-10, cfg.Legend.LargeY-20))
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="0.4" stroke-dasharray="1,3"/>`+"\n",
		x, cfg.Legend.SmallY-10, x, cfg.Legend.LargeY+10, cfg.Layout.TextColor))
	for _, sample := range []struct {
		y     int
		r     float64
		words int
	}{
		{cfg.Legend.SmallY, l.SmallRadius, l.SmallWords},
		{cfg.Legend.LargeY, l.LargeRadius, l.LargeWords},
	} {
		svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%.2f" fill="%s"/>`+"\n",
			x, sample.y, sample.r, l.Color.Hex()))
		svg.WriteString(fmt.Sprintf(`<text class="legend-text" x="%d" y="%d">%d</text>`+"\n",
			x+15, sample.y+5, sample.words))
	}
	svg.WriteString("</g>\n")
}
