// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

// Package query composes parameterized SQL predicates for the database package.
//
// # Overview
//
// A FilterSet is an ordered list of WHERE clauses plus the positional ($n)
// parameters they bind. Clause order always matches parameter order. The window
// clause is always first; optional dimensions follow in a fixed order so the
// resulting query text is stable and cache/log friendly:
//
//	window → category → channel → search → geo-validity
//
// Example:
//
//	w := timerange.Resolve("24h", time.Now(), timerange.Default24h)
//	fs := query.Compose(w, "", query.Dimensions{Category: "motion", Search: "cam"})
//	fs.Where()
//	// start_time >= $1 AND topic = $2 AND (id ILIKE $3 ESCAPE '\' OR topic ILIKE $4 ESCAPE '\' OR channel_name ILIKE $5 ESCAPE '\')
//	fs.Args()
//	// [1710331200000 "motion" "%cam%" "%cam%" "%cam%"]
//
// Search terms are matched literally: %, _ and \ are escaped before wrapping.
//
// # Pagination
//
// LIMIT and OFFSET placeholders continue the numbering of the filter set without
// mutating it, so the same set can drive an independent COUNT query:
//
//	page, args := fs.Page(50, 100) // "LIMIT $6 OFFSET $7"
//
// User input is never concatenated into SQL text; every value is bound.
package query
