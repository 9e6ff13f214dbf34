// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package models defines the data structures shared by the store, the
aggregation views and the HTTP layer.

Categories:

 1. Store rows: Event, Snapshot and their joined forms (EventSummary,
    SnapshotListItem, SnapshotDetail, EventDetail).
 2. View results: MetricsSummary, Timeline, GeoEvents, EventPage,
    SnapshotPage, AnalyticsBreakdown and the catalog entries.
 3. Graph results: GraphRecord, NodeRelationships, Identities.
 4. Envelope: APIResponse, Metadata, APIError.

JSON field names follow the dashboard client: row fields are snake_case,
view-level keys are camelCase.
*/
package models
