package dataset

import (
	"context"
	"database/sql"
	"fmt"
)

// LoadTable materializes one table from a database/sql query. Columns
// are taken from the result set; values are kept as the driver returned
// them.
func LoadTable(ctx context.Context, db *sql.DB, name, query string, args ...any) (*Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dataset: querying table %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("dataset: querying table %s: %w", name, err)
	}

	t := NewTable(name, cols...)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("dataset: scanning table %s: %w", name, err)
		}
		if err := t.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: reading table %s: %w", name, err)
	}
	return t, nil
}
