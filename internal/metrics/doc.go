// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Relational and graph store query performance
  - Circuit breaker state transitions
  - Response cache hit/miss rates
  - Live feed connection counts

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Example PromQL

	# p95 latency of the metrics summary endpoint
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket{endpoint="/api/dashboard/metrics"}[5m]))

	# Store error ratio by operation
	rate(store_query_errors_total[5m]) / rate(store_query_duration_seconds_count[5m])

All collectors are registered on the default registry via promauto.
*/
package metrics
