// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

// Package timerange resolves symbolic range tokens ("30m", "24h", "7d", ...) into
// concrete query windows expressed in epoch milliseconds.
//
// Events carry their start instant as an integer millisecond timestamp, so every
// window boundary produced here is an int64 in the same unit. Windows are derived
// from the request instant and are never cached across requests.
//
// # Defaults
//
// Unknown or missing tokens never produce an error. Each caller names its own
// fallback token:
//
//	w := timerange.Resolve(r.URL.Query().Get("timeRange"), time.Now(), timerange.Default24h)
//
// # Buckets
//
// Series views additionally need a bucket width. Finer ranges get finer buckets so
// that every range yields roughly 6 to 24 buckets:
//
//	30m → 5 minutes    1h → 10 minutes    4h → 30 minutes
//	12h → 1 hour       24h → 1 hour
//	7d  → 1 day        30d → 1 day
package timerange
