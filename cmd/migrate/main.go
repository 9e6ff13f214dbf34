// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

// Command migrate applies, inspects or rolls back the PostgreSQL schema
// migrations embedded in the database package.
//
//	migrate -command up
//	migrate -command status
//	migrate -command down -target 1
//
// The connection string is read from DATABASE_URL (or database.url in
// config.yaml), the same setting the server uses.
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tomtom215/eventdash/internal/config"
	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/logging"
)

func main() {
	command := flag.String("command", "up", "migrate command (up|status|down)")
	timeout := flag.Duration("timeout", time.Minute, "command timeout")
	target := flag.Int64("target", 0, "target version for down (0 rolls back one step)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
	})

	if cfg.Database.URL == "" {
		logging.Error().Msg("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg.Database.URL, database.MigrateCommand(*command), *target); err != nil {
		logging.Error().Err(err).Str("command", *command).Msg("Migration command failed")
		os.Exit(1)
	}
	logging.Info().Str("command", *command).Msg("Migration command completed")
}

func run(ctx context.Context, url string, cmd database.MigrateCommand, target int64) error {
	conn, err := sql.Open(database.DriverPostgres, url)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Error closing database")
		}
	}()

	if err := conn.PingContext(ctx); err != nil {
		return err
	}
	return database.Migrate(ctx, conn, cmd, target)
}
