// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"context"
	"math"
	"time"

	"github.com/tomtom215/eventdash/internal/metrics"
)

// Row caps. Requested limits outside [1, max] are clamped, never rejected.
const (
	GeoDashboardDefault = 100
	GeoDashboardMax     = 1000
	GeoListingDefault   = 1000
	GeoListingMax       = 2000
	PageDefault         = 50
	PageMax             = 500
)

// ScanFunc decodes the current row into a T.
type ScanFunc[T any] func(RowScanner) (T, error)

// Select runs query and collects every row. On failure no rows are returned.
func Select[T any](ctx context.Context, s Store, op, query string, args []interface{}, scan ScanFunc[T]) ([]T, error) {
	start := time.Now()
	out := make([]T, 0)
	err := s.Query(ctx, query, args, func(r RowScanner) error {
		v, err := scan(r)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	metrics.RecordDBQuery(op, time.Since(start), err)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	return out, nil
}

// SelectOne returns the first row, or ErrNotFound.
func SelectOne[T any](ctx context.Context, s Store, op, query string, args []interface{}, scan ScanFunc[T]) (T, error) {
	var zero T
	rows, err := Select(ctx, s, op, query, args, scan)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNotFound
	}
	return rows[0], nil
}

// Count runs a single-value COUNT query. A store that yields no row counts as 0.
func Count(ctx context.Context, s Store, op, query string, args []interface{}) (int64, error) {
	rows, err := Select(ctx, s, op, query, args, func(r RowScanner) (int64, error) {
		var n int64
		err := r.Scan(&n)
		return n, err
	})
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0], nil
}

// ClampLimit bounds limit to [1, max]. Zero means unset and yields def.
func ClampLimit(limit, def, max int) int {
	switch {
	case limit == 0:
		limit = def
	case limit < 0:
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}

// ClampPage returns page, or 1 when page < 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset is the row offset of page for the given page size. It saturates at
// math.MaxInt instead of overflowing.
func Offset(page, limit int) int {
	page = ClampPage(page)
	if limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// Pages is ceil(total/limit); zero rows yield zero pages.
func Pages(total int64, limit int) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}
