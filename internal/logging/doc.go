// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

// Package logging provides the process-wide zerolog logger for EventDash.
//
// Output is JSON by default and human-readable with Format "console".
//
//	logging.Init(logging.Config{Level: "debug", Format: "console", Timestamp: true})
//	logging.Info().Str("driver", "pgx").Msg("store opened")
//
// Request-scoped logging attaches the request ID set by the API middleware:
//
//	logging.Ctx(r.Context()).Warn().Msg("falling back to empty result")
//
// NewSlogLogger bridges log/slog producers (the supervisor event hook and the
// migration runner) into the same stream. AuditLogger records login activity
// with tokens masked.
package logging
