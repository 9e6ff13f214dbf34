// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package middleware provides chi-compatible HTTP middleware shared by the API
router.

Key Components:

  - RequestID: UUID request IDs propagated to logging.Ctx and the
    X-Request-ID response header
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by
    chi route pattern

Both are plain func(http.Handler) http.Handler values and compose with chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Response compression and panic recovery come from chi's own middleware
package and are installed by the router.
*/
package middleware
