// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package api provides the HTTP surface of EventDash on a chi router.

Every endpoint answers with the models.APIResponse envelope: the view data,
the effective filters after defaulting and clamping, a generation timestamp
and query metadata. Failures produce a single error envelope; store errors
map to QUERY_FAILED, graph errors to GRAPH_QUERY_FAILED and missing detail
rows to NOT_FOUND. Messages never include SQL, Cypher or parameter values.

Route groups:

	/api/health, /api/health/live, /api/health/ready   probes
	/api/login (POST, GET, DELETE)                     session management
	/api/ws                                            live metrics feed
	/api/dashboard/...                                 dashboard views
	/api/events/..., /api/snapshots/...                listings and details
	/metrics, /swagger/*                               observability

The analytics, graph and identities dashboard routes require a session when
authentication is enabled. Catalog endpoints are served through the
configured cache backend and flag cache hits in metadata.
*/
package api
