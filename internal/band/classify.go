// Package band decides where an article sits when keyword filters are active.
package band

import "archive2svg/internal/dataset"

// Class is the placement class of an article.
type Class int

const (
	// None is the pass-through class: no filter is active.
	None Class = iota
	// KeywordOne marks articles matching only the first keyword.
	KeywordOne
	// KeywordTwo marks articles matching only the second keyword.
	KeywordTwo
	// Both marks articles matching both keywords.
	Both
	// Dimmed marks articles matching none of the active filters.
	Dimmed
)

func (c Class) String() string {
	switch c {
	case None:
		return "none"
	case KeywordOne:
		return "keyword-one"
	case KeywordTwo:
		return "keyword-two"
	case Both:
		return "both"
	case Dimmed:
		return "dimmed"
	default:
		return "unknown"
	}
}

// Highlighted reports whether the class moves the article into a band.
func (c Class) Highlighted() bool {
	return c == KeywordOne || c == KeywordTwo || c == Both
}

// Opacity holds the three opacity tiers.
type Opacity struct {
	Baseline  float64
	Highlight float64
	Dimmed    float64
}

// DefaultOpacity is the observed tier set.
var DefaultOpacity = Opacity{Baseline: 0.7, Highlight: 0.8, Dimmed: 0.25}

// For returns the opacity tier of class c.
func (o Opacity) For(c Class) float64 {
	switch c {
	case None:
		return o.Baseline
	case Dimmed:
		return o.Dimmed
	default:
		return o.Highlight
	}
}

// Filters holds the active keyword selections. Empty means inactive.
type Filters struct {
	KeywordOne string
	KeywordTwo string
}

// Active reports whether at least one filter is set.
func (f Filters) Active() bool {
	return f.KeywordOne != "" || f.KeywordTwo != ""
}

// Classify places an article. The first matching row wins:
//
//	no filter active            -> None
//	matches both                -> Both
//	matches keyword one only    -> KeywordOne
//	matches keyword two only    -> KeywordTwo
//	matches neither             -> Dimmed
//
// A keyword absent from the article's columns counts as no match.
func Classify(a dataset.Article, f Filters) Class {
	if !f.Active() {
		return None
	}
	one := a.HasMatch(f.KeywordOne)
	two := a.HasMatch(f.KeywordTwo)
	switch {
	case one && two:
		return Both
	case one:
		return KeywordOne
	case two:
		return KeywordTwo
	default:
		return Dimmed
	}
}
