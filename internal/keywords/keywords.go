// Package keywords maps tracked keywords to display labels and manages the
// two keyword filter slots.
package keywords

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Placeholders shown in the two selectors when no keyword is chosen.
const (
	PlaceholderOne = "select keyword #1"
	PlaceholderTwo = "select keyword #2"
)

// Table maps a keyword to its English translation.
type Table map[string]string

// DefaultTable holds the translations of the archive's Norwegian keywords.
var DefaultTable = Table{
	"klima":          "climate",
	"politikk":       "politics/policy",
	"familie":        "family",
	"kjærlighet":     "love (noun)",
	"elsker":         "love (verb)",
	"ressurs":        "resource",
	"økonomi":        "economy",
	"isbjørn":        "polar bear",
	"isbree":         "glacier",
	"bolig":          "housing/residence",
	"permafrost":     "permafrost",
	"strømforsyning": "power/electricity supply",
	"forsk":          "research",
	"fornorsk":       "Norwegianize",
}

// Translate returns the translation of kw, or kw itself when unknown.
func (t Table) Translate(kw string) string {
	if tr, ok := t[kw]; ok && tr != "" {
		return tr
	}
	return kw
}

// Label returns the selector label "kw (translation)".
func (t Table) Label(kw string) string {
	return kw + " (" + t.Translate(kw) + ")"
}

// Options returns the selector entries for keywords: the placeholder first,
// then the labels in Norwegian alphabet order (æ, ø, å after z). x/text has no
// Norwegian tailoring; Danish shares the letter order.
func (t Table) Options(placeholder string, kws []string) []string {
	labels := make([]string, 0, len(kws))
	for _, kw := range kws {
		labels = append(labels, t.Label(kw))
	}
	collate.New(language.Danish).SortStrings(labels)
	return append([]string{placeholder}, labels...)
}

// ParseOption extracts the keyword from a selector entry. Placeholders and
// empty entries yield "".
func ParseOption(option string) string {
	option = strings.TrimSpace(option)
	if option == "" || option == PlaceholderOne || option == PlaceholderTwo {
		return ""
	}
	if i := strings.Index(option, " ("); i >= 0 {
		return option[:i]
	}
	return option
}
