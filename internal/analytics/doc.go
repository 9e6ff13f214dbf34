// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package analytics implements the read models served by the dashboard API.

Every view resolves a time window from a range token (package timerange),
composes its predicates (package query) and runs them through the executor
helpers in package database. Views never see SQL errors directly: a failed
read is reported as database.ErrQueryFailed and a missing record as
database.ErrNotFound.

Views:

  - MetricsSummary: totals, top topics, location split, top cameras, snapshot counts
  - Timeline: event counts per (bucket, topic)
  - GeoEvents: events with usable coordinates, dashboard or listing caps
  - Events, Snapshots: offset-paginated listings
  - EventDetail, SnapshotDetail: single records
  - EventTypes, Cameras, SnapshotTypes: catalogs
  - Analytics: level, topic, camera and snapshot-type breakdown

Each call is bounded by the service's query timeout. With a NullStore every
view returns empty data and zero counts.
*/
package analytics
