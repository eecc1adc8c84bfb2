package dataset

import (
	"sort"
	"strings"
)

// Schema is the set of keyword columns present in an archive. It is derived
// once at ingestion and passed along instead of re-scanning field names.
type Schema struct {
	Keywords []string
}

// DiscoverSchema collects the keywords tracked by a header row.
func DiscoverSchema(columns []string) Schema {
	seen := make(map[string]struct{})
	var keywords []string
	for _, col := range columns {
		name := strings.ToLower(strings.TrimSpace(col))
		if !strings.HasSuffix(name, MatchSuffix) {
			continue
		}
		kw := strings.TrimSuffix(name, MatchSuffix)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return Schema{Keywords: keywords}
}

// Has reports whether keyword is tracked.
func (s Schema) Has(keyword string) bool {
	for _, kw := range s.Keywords {
		if kw == keyword {
			return true
		}
	}
	return false
}

// matchColumns maps column index -> keyword for the tracked keywords.
func (s Schema) matchColumns(columnMap map[string]int) map[int]string {
	out := make(map[int]string, len(s.Keywords))
	for _, kw := range s.Keywords {
		if idx, ok := columnMap[kw+MatchSuffix]; ok {
			out[idx] = kw
		}
	}
	return out
}
