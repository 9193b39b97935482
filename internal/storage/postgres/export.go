package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/polesense/polesense-be/internal/storage"
)

type exportTable struct {
	name         string
	hasTimestamp bool
}

// Whitelist of exportable datasets; dataset keys are what the API accepts.
var exportTables = map[string]exportTable{
	"telemetry": {name: "telemetry_data", hasTimestamp: true},
	"alerts":    {name: "alerts", hasTimestamp: true},
	"poles":     {name: "poles", hasTimestamp: false},
}

// ExportTable dumps a whitelisted dataset as a header row plus string
// records. When both bounds are set and the table carries a timestamp
// column, rows are restricted to the closed range.
func (s *Store) ExportTable(ctx context.Context, dataset string, start, end time.Time) ([]string, [][]string, error) {
	table, ok := exportTables[dataset]
	if !ok {
		return nil, nil, storage.ErrNotFound
	}

	query := `SELECT * FROM ` + table.name
	args := []any{}
	if table.hasTimestamp && !start.IsZero() && !end.IsZero() {
		query += ` WHERE timestamp BETWEEN $1 AND $2`
		args = append(args, start, end)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Name
	}

	records := [][]string{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		records = append(records, formatRecord(values))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return headers, records, nil
}

func formatRecord(values []any) []string {
	record := make([]string, len(values))
	for i, v := range values {
		record[i] = formatValue(v)
	}
	return record
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.Format(time.RFC3339)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
