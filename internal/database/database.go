// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tomtom215/eventdash/internal/config"
	"github.com/tomtom215/eventdash/internal/logging"
)

// Driver names accepted by Open.
const (
	DriverPostgres = "pgx"
	DriverDuckDB   = "duckdb"
)

// Open connects to the configured store, verifies it with a ping and prepares
// the schema: goose migrations for PostgreSQL when AutoMigrate is set, direct
// DDL for DuckDB. SeedDemo fills an empty DuckDB store with demo data.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*SQLStore, error) {
	dsn, err := dataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Driver, err)
	}
	configurePool(conn, cfg)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping %s store: %w", cfg.Driver, err)
	}

	store := NewSQLStore(conn, cfg.Driver)

	switch cfg.Driver {
	case DriverDuckDB:
		if err := EnsureSchema(ctx, store); err != nil {
			closeQuietly(conn)
			return nil, err
		}
		if cfg.SeedDemo {
			if err := SeedDemo(ctx, store, time.Now()); err != nil {
				logging.Warn().Err(err).Msg("demo seed failed")
			}
		}
	case DriverPostgres:
		if cfg.AutoMigrate {
			if err := Migrate(ctx, conn, MigrateUp, 0); err != nil {
				closeQuietly(conn)
				return nil, err
			}
		}
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("store opened")
	return store, nil
}

func dataSourceName(cfg *config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case DriverPostgres:
		if cfg.URL == "" {
			return "", fmt.Errorf("database url is required for driver %q", cfg.Driver)
		}
		return cfg.URL, nil
	case DriverDuckDB:
		if cfg.Path == "" {
			return "", nil
		}
		// 0750 so only the service account and its group can read the file.
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return "", fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
		return cfg.Path, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func configurePool(conn *sql.DB, cfg *config.DatabaseConfig) {
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	conn.SetConnMaxIdleTime(5 * time.Minute)
}
