// Package sql connects collectors to databases through database/sql.
// Query results are read as a pull source, and statements are executed
// once per collected item by sink collectors.
package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
)

// Scanner scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Rows iterates over query results. It ends at the last row or at the
// first error, which Err then reports. The rows are closed once the
// iterator ends; call Close when abandoning it earlier.
type Rows[T any] struct {
	rows *sql.Rows
	scan Scanner[T]
	err  error
	done bool
}

// Query runs query on db and returns an iterator over its rows.
func Query[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) (*Rows[T], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, collecterrors.Wrap(err, "query")
	}
	return FromRows(rows, scan), nil
}

// FromRows iterates over rows the caller already queried.
func FromRows[T any](rows *sql.Rows, scan Scanner[T]) *Rows[T] {
	return &Rows[T]{rows: rows, scan: scan}
}

func (r *Rows[T]) Next() (T, bool) {
	var zero T
	if r.done {
		return zero, false
	}
	if !r.rows.Next() {
		r.end(r.rows.Err())
		return zero, false
	}
	v, err := r.scan(r.rows)
	if err != nil {
		r.end(collecterrors.Wrap(err, "scan"))
		return zero, false
	}
	return v, true
}

func (r *Rows[T]) SizeHint() (int, int) {
	if r.done {
		return 0, 0
	}
	return 0, -1
}

// Err returns the error that ended the iteration, if any.
func (r *Rows[T]) Err() error {
	return r.err
}

// Close releases the rows.
func (r *Rows[T]) Close() error {
	r.done = true
	return r.rows.Close()
}

func (r *Rows[T]) end(err error) {
	r.done = true
	if err != nil {
		r.err = err
	}
	if cerr := r.rows.Close(); r.err == nil && cerr != nil {
		r.err = cerr
	}
}

// ScanStrings scans every column of a row into its string form.
func ScanStrings(rows *sql.Rows) ([]string, error) {
	values, cols, err := scanAny(rows)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(cols))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			result[i] = ""
		case []byte:
			result[i] = string(val)
		case string:
			result[i] = val
		default:
			result[i] = fmt.Sprint(val)
		}
	}
	return result, nil
}

// ScanMap scans a row into a map keyed by column name.
func ScanMap(rows *sql.Rows) (map[string]any, error) {
	values, cols, err := scanAny(rows)
	if err != nil {
		return nil, err
	}
	result := make(map[string]any, len(cols))
	for i, col := range cols {
		result[col] = values[i]
	}
	return result, nil
}

func scanAny(rows *sql.Rows) ([]any, []string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, nil, err
	}
	return values, cols, nil
}
