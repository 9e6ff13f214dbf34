// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Command server runs the EventDash HTTP API.

EventDash serves read-only analytics over camera detection events and their
snapshots: window-scoped metrics and timelines, geo listings, paged event and
snapshot queries, and relationship views from a Neo4j graph.

# Startup

 1. Configuration: defaults, config.yaml, .env, then environment (Koanf v2)
 2. Store: PostgreSQL (pgx) or DuckDB behind a circuit breaker; an empty
    NullStore in mock mode or when the store is down and DATABASE_FAIL_OPEN is set
 3. Graph: Neo4j when GRAPH_ENABLED, otherwise empty relationship views
 4. Cache: memory or redis for the catalog endpoints
 5. Auth: JWT cookie sessions behind APP_PASSWORD when AUTH_ENABLED
 6. Supervisor tree: backend monitors, live feed and the HTTP server

# Configuration

Common environment variables:

	DATABASE_DRIVER=pgx            # or duckdb
	DATABASE_URL=postgres://...    # pgx only
	DUCKDB_PATH=/data/events.duckdb
	MOCK_MODE=true                 # no external stores
	GRAPH_ENABLED=true NEO4J_URI=neo4j://neo4j:7687 NEO4J_PASSWORD=...
	CACHE_BACKEND=redis REDIS_ADDRESS=redis:6379
	AUTH_ENABLED=true JWT_SECRET=... APP_PASSWORD=...
	LOG_LEVEL=debug LOG_FORMAT=console

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to SHUTDOWN_TIMEOUT before the stores are closed.
*/
package main
