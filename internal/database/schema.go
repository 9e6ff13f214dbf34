// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"context"
	"fmt"
)

// duckdbSchema mirrors the PostgreSQL migrations for the embedded store.
// goose has no DuckDB dialect, so these run directly and idempotently.
var duckdbSchema = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id           VARCHAR PRIMARY KEY,
		topic        VARCHAR,
		module       VARCHAR,
		level        VARCHAR,
		start_time   BIGINT NOT NULL,
		latitude     DOUBLE,
		longitude    DOUBLE,
		channel_id   VARCHAR,
		channel_name VARCHAR,
		channel_type VARCHAR,
		created_at   TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
	`CREATE TABLE IF NOT EXISTS snapshots (
		id         VARCHAR PRIMARY KEY,
		event_id   VARCHAR NOT NULL REFERENCES events (id),
		type       VARCHAR,
		path       VARCHAR,
		image_url  VARCHAR,
		created_at TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_start_time ON events (start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_event_id ON snapshots (event_id)`,
}

// EnsureSchema creates the DuckDB tables and indexes when missing.
func EnsureSchema(ctx context.Context, s *SQLStore) error {
	for _, stmt := range duckdbSchema {
		if err := s.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
