// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package database provides the read-only store behind the aggregation views.

Store is the abstraction the views depend on. Three implementations exist:

  - SQLStore: database/sql over PostgreSQL (pgx stdlib driver) or DuckDB
  - BreakerStore: a gobreaker circuit breaker around another Store
  - NullStore: yields no rows, used in mock mode and as the degraded fallback

The executor helpers (Select, SelectOne, Count) run composed queries from
package query, record per-operation Prometheus timings and normalize every
store failure into a *QueryError that matches ErrQueryFailed:

	rows, err := database.Select(ctx, store, "events.page", sql, args, scanEvent)
	if errors.Is(err, database.ErrQueryFailed) {
		// respond 500 QUERY_FAILED
	}

Row caps are applied with ClampLimit and ClampPage; Pages computes the page
count for a total.

Schema management differs per driver. PostgreSQL uses the goose migrations
embedded from migrations/ (see Migrate and cmd/migrate). DuckDB has no goose
dialect and is prepared by EnsureSchema, optionally followed by SeedDemo.
*/
package database
