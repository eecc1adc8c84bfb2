package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultTable is the archive table read by LoadSQLite when none is given.
const DefaultTable = "articles"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads archive rows from a SQLite database. The table uses the
// same column names as the CSV export; keyword columns are discovered from
// the table's columns.
func LoadSQLite(ctx context.Context, path, table string) ([]Record, Schema, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, Schema{}, fmt.Errorf("invalid table name %q", table)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, Schema{}, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, Schema{}, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, Schema{}, fmt.Errorf("read columns: %w", err)
	}
	columnMap := make(map[string]int, len(columns))
	for i, col := range columns {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{ColumnPublished, ColumnWordCount} {
		if _, ok := columnMap[required]; !ok {
			return nil, Schema{}, fmt.Errorf("column '%s' not found in table %s. Available columns: %v", required, table, columns)
		}
	}

	schema := DiscoverSchema(columns)
	matchCols := schema.matchColumns(columnMap)

	var records []Record
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for row := 1; rows.Next(); row++ {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, Schema{}, fmt.Errorf("scan row %d: %w", row, err)
		}
		fields := make([]string, len(values))
		var published *time.Time
		for i, v := range values {
			if t, ok := v.(time.Time); ok && i == columnMap[ColumnPublished] {
				tt := t
				published = &tt
			}
			fields[i] = sqlString(v)
		}
		rec := recordFromRow(fields, columnMap, matchCols, row)
		rec.PublishedAt = published
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, Schema{}, fmt.Errorf("iterate %s: %w", table, err)
	}
	return records, schema, nil
}

func sqlString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
