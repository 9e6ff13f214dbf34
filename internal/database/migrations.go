// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/tomtom215/eventdash/internal/logging"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// MigrateCommand selects the goose operation run by Migrate.
type MigrateCommand string

const (
	MigrateUp     MigrateCommand = "up"
	MigrateDown   MigrateCommand = "down"
	MigrateStatus MigrateCommand = "status"
)

// Migrate runs the embedded PostgreSQL migrations. For MigrateDown a positive
// target rolls back to that version; zero rolls back one step.
func Migrate(ctx context.Context, conn *sql.DB, cmd MigrateCommand, target int64) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	switch cmd {
	case MigrateUp:
		if err := goose.UpContext(runCtx, conn, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logging.Info().Msg("migrations applied")
	case MigrateDown:
		var err error
		if target > 0 {
			err = goose.DownToContext(runCtx, conn, migrationsDir, target)
		} else {
			err = goose.DownContext(runCtx, conn, migrationsDir)
		}
		if err != nil {
			return fmt.Errorf("rollback migrations: %w", err)
		}
		logging.Info().Int64("target", target).Msg("rollback complete")
	case MigrateStatus:
		if err := goose.StatusContext(runCtx, conn, migrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown migrate command %q", cmd)
	}
	return nil
}

// gooseLogger routes goose output through the process logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logging.Info().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logging.Fatal().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
