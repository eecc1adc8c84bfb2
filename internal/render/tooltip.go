package render

import (
	"fmt"

	"archive2svg/internal/band"
	"archive2svg/internal/config"
	"archive2svg/internal/dataset"
	"archive2svg/internal/hover"
)

// NoExcerpt replaces a missing body text excerpt.
const NoExcerpt = "No excerpt available"

// Tooltip is the content and placement of an article's tooltip.
type Tooltip struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	WordCount   int      `json:"word_count"`
	KeywordsOne []string `json:"keywords_one,omitempty"`
	KeywordsTwo []string `json:"keywords_two,omitempty"`
	Excerpt     string   `json:"excerpt"`
	Left        float64  `json:"left"`
	Top         float64  `json:"top"`
}

// NewTooltip builds the tooltip for a, listing the matched terms of each
// active keyword, placed at the configured offset from the pointer.
func NewTooltip(a dataset.Article, filters band.Filters, pointer hover.Point, cfg config.Config) Tooltip {
	excerpt := a.Excerpt
	if excerpt == "" {
		excerpt = NoExcerpt
	}
	return Tooltip{
		ID:          a.ID,
		Date:        a.Published.Format(cfg.Tooltip.DateLayout),
		Title:       a.Title,
		Link:        cfg.Tooltip.URLPrefix + a.URL,
		WordCount:   a.WordCount,
		KeywordsOne: a.MatchList(filters.KeywordOne),
		KeywordsTwo: a.MatchList(filters.KeywordTwo),
		Excerpt:     excerpt,
		Left:        pointer.X + float64(cfg.Tooltip.OffsetX),
		Top:         pointer.Y + float64(cfg.Tooltip.OffsetY),
	}
}

// IntersectionCaption is shown when both keyword slots are filled.
func IntersectionCaption(one, two string) string {
	if one == "" || two == "" {
		return ""
	}
	return fmt.Sprintf("These are the articles where '%s' and '%s' intersect...", one, two)
}
