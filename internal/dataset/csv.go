package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names of the archive export.
const (
	ColumnID        = "id"
	ColumnPublished = "published"
	ColumnWordCount = "word_count"
	ColumnTitle     = "title"
	ColumnURL       = "published_url"
	ColumnExcerpt   = "bodytext_excerpt"
)

// LoadCSV opens filename and reads it with ReadCSV.
func LoadCSV(filename string) ([]Record, Schema, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, Schema{}, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer file.Close()
	return ReadCSV(file)
}

// ReadCSV reads archive rows. Header names are matched case-insensitively;
// the published and word_count columns are required. Without an id column
// the 1-based row number becomes the article id. Row order is preserved.
func ReadCSV(r io.Reader) ([]Record, Schema, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, Schema{}, nil
	}
	if err != nil {
		return nil, Schema{}, fmt.Errorf("error reading CSV header: %w", err)
	}

	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{ColumnPublished, ColumnWordCount} {
		if _, ok := columnMap[required]; !ok {
			return nil, Schema{}, fmt.Errorf("column '%s' not found in CSV. Available columns: %v", required, header)
		}
	}

	schema := DiscoverSchema(header)
	matchCols := schema.matchColumns(columnMap)

	var records []Record
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Schema{}, fmt.Errorf("error reading CSV: %w", err)
		}
		records = append(records, recordFromRow(fields, columnMap, matchCols, row))
	}
	return records, schema, nil
}

func recordFromRow(fields []string, columnMap map[string]int, matchCols map[int]string, row int) Record {
	get := func(name string) string {
		idx, ok := columnMap[name]
		if !ok || idx >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[idx])
	}

	rec := Record{
		ID:        get(ColumnID),
		Published: get(ColumnPublished),
		WordCount: get(ColumnWordCount),
		Title:     get(ColumnTitle),
		URL:       get(ColumnURL),
		Excerpt:   get(ColumnExcerpt),
		Matches:   make(map[string]string, len(matchCols)),
	}
	if _, ok := columnMap[ColumnID]; !ok {
		rec.ID = strconv.Itoa(row)
	}
	for idx, kw := range matchCols {
		if idx < len(fields) {
			rec.Matches[kw] = strings.TrimSpace(fields[idx])
		}
	}
	return rec
}
