// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package graph serves the relationship views backed by Neo4j.

Three read-only views are provided:

  - Graph: camera -> event records with the optional snapshot image and tag
  - Identities: recognised faces and plates seen in a window, with their
    watchlists and event counts
  - NodeRelationships: a single node and its direct neighbours

Cypher runs through a Runner. Neo4jStore is the driver-backed Runner;
NullGraph answers every query with no records and is used in mock mode or when
the graph is disabled, so the views return empty data instead of failing.

Node labels are never taken verbatim from a request: NodeRelationships only
accepts labels from a fixed set.
*/
package graph
