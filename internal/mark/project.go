// Package mark turns articles into drawable mark descriptors.
package mark

import (
	"archive2svg/internal/band"
	"archive2svg/internal/dataset"
	"archive2svg/internal/scale"
)

// Mark is the visual tuple of one article. It carries the article so the
// renderer can build tooltip content without another lookup.
type Mark struct {
	ID      string
	X       float64
	Y       float64
	R       float64
	Color   scale.RGB
	Opacity float64
	Class   band.Class
	Article dataset.Article
}

// Project computes the mark of a classified article. x always comes from
// the time scale and r from the radius scale; the class picks the vertical
// scale and color scale. Dimmed articles keep their default position and
// color. Project has no side effects.
func Project(a dataset.Article, set *scale.Set, class band.Class, opacity band.Opacity) Mark {
	words := float64(a.WordCount)

	y, color := set.Default, set.DefaultColor
	switch class {
	case band.Both:
		y, color = set.Both, set.BothColor
	case band.KeywordOne:
		y, color = set.KeywordOne, set.KeywordOneColor
	case band.KeywordTwo:
		y, color = set.KeywordTwo, set.KeywordTwoColor
	}

	return Mark{
		ID:      a.ID,
		X:       set.Time.At(a.Published),
		Y:       y.At(words),
		R:       set.Radius.At(words),
		Color:   color.At(words),
		Opacity: opacity.For(class),
		Class:   class,
		Article: a,
	}
}

// ProjectAll classifies and projects every article of ds in order.
func ProjectAll(ds *dataset.Dataset, set *scale.Set, filters band.Filters, opacity band.Opacity) []Mark {
	if ds.Len() == 0 {
		return nil
	}
	marks := make([]Mark, 0, ds.Len())
	for _, a := range ds.Articles {
		marks = append(marks, Project(a, set, band.Classify(a, filters), opacity))
	}
	return marks
}

// Counts tallies marks per class.
func Counts(marks []Mark) map[band.Class]int {
	out := make(map[band.Class]int)
	for _, m := range marks {
		out[m.Class]++
	}
	return out
}

// Highlighted counts the marks that sit in a keyword band.
func Highlighted(marks []Mark) int {
	n := 0
	for _, m := range marks {
		if m.Class.Highlighted() {
			n++
		}
	}
	return n
}
