// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

// General API annotations for swag. The generated document lives in
// internal/api/docs and is served at /swagger/doc.json.
//
// @title EventDash API
// @version 1.0
// @description Camera event analytics: time-windowed metrics, timelines, geo listings, paged events and snapshots, and graph views.
// @description
// @description ## Time ranges
// @description
// @description Windows are selected with `timeRange`: 30m, 1h, 4h, 12h, 24h, 7d or 30d.
// @description Unknown tokens fall back to the endpoint default (24h for dashboards, 7d for listings, 30m for analytics).
// @description
// @description ## Authentication
// @description
// @description When enabled, the analytics and graph views require a session. POST `/api/login` sets an HTTP-only
// @description `authToken` cookie; the same token is accepted as a Bearer header.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "timestamp": "2026-01-01T00:00:00Z",
// @description   "error": {"code": "QUERY_FAILED", "message": "Failed to fetch metrics"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/eventdash
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name authToken
//
// @tag.name Core
// @tag.description Health and readiness probes
//
// @tag.name Dashboard
// @tag.description Window-scoped metrics, timeline, geo listing and analytics breakdown
//
// @tag.name Events
// @tag.description Paged event listing, event detail and catalogs
//
// @tag.name Snapshots
// @tag.description Paged snapshot listing, snapshot detail and type catalog
//
// @tag.name Graph
// @tag.description Relationship views backed by the graph database
//
// @tag.name Auth
// @tag.description Password login and cookie sessions
package main
