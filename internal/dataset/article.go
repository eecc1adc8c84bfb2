// Package dataset turns raw archive records into the validated, ordered set of
// articles the chart is drawn from.
package dataset

import (
	"strings"
	"time"
)

const (
	// NoMatch is the sentinel stored in a keyword column when the article
	// does not mention the keyword.
	NoMatch = "No match"

	// MatchSuffix marks a keyword-match column: "klima_matches" tracks "klima".
	MatchSuffix = "_matches"
)

// Record is one raw row at the ingestion boundary. Every field is kept as it
// was read; the normalizer decides whether the row becomes an Article.
type Record struct {
	ID          string
	Published   string
	PublishedAt *time.Time // pre-parsed date, wins over Published when set
	WordCount   string
	Title       string
	URL         string
	Excerpt     string
	Matches     map[string]string // keyword -> raw match column value
}

// Article is a validated archive article.
type Article struct {
	ID        string
	Published time.Time
	WordCount int
	Title     string
	URL       string
	Excerpt   string
	Matches   map[string]string
}

// HasMatch reports whether the article mentions keyword. Unknown keywords,
// empty values and the NoMatch sentinel all count as no match.
func (a Article) HasMatch(keyword string) bool {
	if keyword == "" {
		return false
	}
	v, ok := a.Matches[keyword]
	if !ok {
		return false
	}
	v = strings.TrimSpace(v)
	return v != "" && v != NoMatch
}

// MatchList returns the matched terms for keyword, split on commas.
func (a Article) MatchList(keyword string) []string {
	if !a.HasMatch(keyword) {
		return nil
	}
	var out []string
	for _, part := range strings.Split(a.Matches[keyword], ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
