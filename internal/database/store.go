// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"context"
	"database/sql"
	"fmt"
)

// RowScanner is the per-row view handed to Query callbacks. *sql.Rows
// satisfies it.
type RowScanner interface {
	Scan(dest ...any) error
}

// Store is the read-only relational store the views query.
//
// Query runs a parameterized statement and calls each once per row. An
// implementation must release its resources before returning, whether or
// not each fails.
type Store interface {
	Query(ctx context.Context, query string, args []interface{}, each func(RowScanner) error) error
	Ping(ctx context.Context) error
	Close() error
}

// SQLStore is a Store over database/sql.
type SQLStore struct {
	conn   *sql.DB
	driver string
}

// NewSQLStore wraps an open pool. Open is the usual constructor.
func NewSQLStore(conn *sql.DB, driver string) *SQLStore {
	return &SQLStore{conn: conn, driver: driver}
}

// Query implements Store.
func (s *SQLStore) Query(ctx context.Context, query string, args []interface{}, each func(RowScanner) error) error {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer closeQuietly(rows)

	for rows.Next() {
		if err := each(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Exec runs a statement that returns no rows. Used by schema setup and seeding.
func (s *SQLStore) Exec(ctx context.Context, query string, args ...interface{}) error {
	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}

// Ping implements Store.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close implements Store.
func (s *SQLStore) Close() error {
	return s.conn.Close()
}

// Conn exposes the pool for migrations.
func (s *SQLStore) Conn() *sql.DB {
	return s.conn
}

// Driver returns "pgx" or "duckdb".
func (s *SQLStore) Driver() string {
	return s.driver
}

// NullStore yields no rows and never fails. It backs mock mode and the
// degraded fallback when the real store cannot be opened.
type NullStore struct{}

// Query implements Store without calling each.
func (NullStore) Query(context.Context, string, []interface{}, func(RowScanner) error) error {
	return nil
}

// Ping implements Store.
func (NullStore) Ping(context.Context) error { return nil }

// Close implements Store.
func (NullStore) Close() error { return nil }

// IsDegraded reports whether s serves empty results by construction.
func IsDegraded(s Store) bool {
	switch v := s.(type) {
	case NullStore, *NullStore:
		return true
	case *BreakerStore:
		return IsDegraded(v.next)
	default:
		return false
	}
}
