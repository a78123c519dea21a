package analytics

import (
	"context"
	"fmt"

	"github.com/goldmart/goldmart/internal/db"
)

// Result holds the tabular output of a catalog query.
type Result struct {
	// Columns are the result column names, in order.
	Columns []string

	// Rows are the result values, one slice per row.
	Rows [][]any
}

// collect runs a SQL statement and marshals every row generically using the
// result's field descriptions.
func collect(ctx context.Context, q db.Querier, sql string) (*Result, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	columns := make([]string, len(fds))
	for i, fd := range fds {
		columns[i] = fd.Name
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		result.Rows = append(result.Rows, values)
	}
	return result, rows.Err()
}

// registerSQL registers a catalog query backed by a single SQL statement.
func registerSQL(name, category, description, sql string) {
	Register(&Query{
		Name:        name,
		Category:    category,
		Description: description,
		Run: func(ctx context.Context, q db.Querier) (*Result, error) {
			return collect(ctx, q, sql)
		},
	})
}
