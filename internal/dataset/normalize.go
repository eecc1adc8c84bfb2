package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyDataset signals that nothing is left to draw: the input was empty
// or every record was filtered out. Callers render a placeholder instead of
// building scales.
var ErrEmptyDataset = errors.New("no valid articles to display")

// dateLayouts are tried in order for records without a pre-parsed date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"02.01.2006",
}

// Options holds the normalization thresholds.
type Options struct {
	MinYear      int // earliest publication year kept
	MinWordCount int // articles need strictly more words than this
}

// Report counts what happened to each input record. Drops are never fatal.
type Report struct {
	Total              int
	Kept               int
	MissingID          int
	MalformedDate      int
	MalformedWordCount int
	TooOld             int
	TooShort           int
}

// Dropped is the number of records excluded from the working set.
func (r Report) Dropped() int {
	return r.Total - r.Kept
}

// Dataset is the normalized working set. Articles keep input order.
type Dataset struct {
	Articles    []Article
	Schema      Schema
	Fingerprint string // content hash, used as the dataset identity for memoization
}

// Len returns the number of articles.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Articles)
}

// Normalize filters records into a Dataset. A record is kept iff its date
// resolves to a valid calendar date in or after opts.MinYear and its word
// count exceeds opts.MinWordCount. Records are copied, never mutated.
// The Report is returned even when the result is ErrEmptyDataset.
func Normalize(records []Record, schema Schema, opts Options, logger *slog.Logger) (*Dataset, Report, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	report := Report{Total: len(records)}
	if len(records) == 0 {
		return nil, report, ErrEmptyDataset
	}

	articles := make([]Article, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			report.MissingID++
			logger.Debug("dropping record without id", slog.Int("row", i+1))
			continue
		}
		published, ok := resolveDate(rec)
		if !ok {
			report.MalformedDate++
			logger.Debug("dropping record with malformed date",
				slog.String("id", rec.ID), slog.String("published", rec.Published))
			continue
		}
		words, ok := parseWordCount(rec.WordCount)
		if !ok {
			report.MalformedWordCount++
			logger.Debug("dropping record with malformed word count",
				slog.String("id", rec.ID), slog.String("word_count", rec.WordCount))
			continue
		}
		if published.Year() < opts.MinYear {
			report.TooOld++
			continue
		}
		if words <= opts.MinWordCount {
			report.TooShort++
			continue
		}

		matches := make(map[string]string, len(rec.Matches))
		for k, v := range rec.Matches {
			matches[k] = v
		}
		articles = append(articles, Article{
			ID:        rec.ID,
			Published: published,
			WordCount: words,
			Title:     rec.Title,
			URL:       rec.URL,
			Excerpt:   rec.Excerpt,
			Matches:   matches,
		})
	}

	report.Kept = len(articles)
	logger.Info("normalized archive",
		slog.Int("total", report.Total),
		slog.Int("kept", report.Kept),
		slog.Int("malformed_date", report.MalformedDate),
		slog.Int("too_old", report.TooOld),
		slog.Int("too_short", report.TooShort))

	if len(articles) == 0 {
		return nil, report, ErrEmptyDataset
	}

	keywords := make([]string, len(schema.Keywords))
	copy(keywords, schema.Keywords)
	ds := &Dataset{
		Articles: articles,
		Schema:   Schema{Keywords: keywords},
	}
	ds.Fingerprint = fingerprint(ds)
	return ds, report, nil
}

// resolveDate prefers the pre-parsed date and falls back to parsing Published.
func resolveDate(rec Record) (time.Time, bool) {
	if rec.PublishedAt != nil {
		if rec.PublishedAt.IsZero() {
			return time.Time{}, false
		}
		return *rec.PublishedAt, true
	}
	s := strings.TrimSpace(rec.Published)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseWordCount accepts integers and integral floats ("512.0" from
// spreadsheet exports). Counts must be positive.
func parseWordCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, n > 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f <= 0 {
		return 0, false
	}
	return int(f), true
}

func fingerprint(ds *Dataset) string {
	h := fnv.New64a()
	var buf [8]byte
	for _, a := range ds.Articles {
		h.Write([]byte(a.ID))
		binary.LittleEndian.PutUint64(buf[:], uint64(a.Published.UnixNano()))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(a.WordCount))
		h.Write(buf[:])
	}
	for _, kw := range ds.Schema.Keywords {
		h.Write([]byte(kw))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
