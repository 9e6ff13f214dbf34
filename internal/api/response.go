// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/graph"
	"github.com/tomtom215/eventdash/internal/logging"
	"github.com/tomtom215/eventdash/internal/models"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data and the effective filters in a success envelope.
func (h *Handler) respondSuccess(w http.ResponseWriter, start time.Time, data, filters interface{}, cached bool) {
	meta := &models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Cached:      cached,
		Degraded:    h.views.Degraded(),
	}
	respondJSON(w, http.StatusOK, models.NewSuccess(data, filters, h.now(), meta))
}

// respondError sends an error envelope. err is logged, never returned to the client.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", sanitizeLogValue(code)).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", logging.SanitizeError(err.Error())).
			Msg("API Error")
	}
	respondJSON(w, status, models.NewError(code, message, h.now()))
}

// respondViewError maps a view failure to one error envelope. view names the
// failed read in the client message ("Failed to fetch events").
func (h *Handler) respondViewError(w http.ResponseWriter, r *http.Request, view string, err error) {
	var dbErr *database.QueryError
	var graphErr *graph.QueryError

	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, graph.ErrNotFound):
		h.respondError(w, r, http.StatusNotFound, models.CodeNotFound, notFoundMessage(view), nil)
	case errors.Is(err, graph.ErrUnknownLabel):
		h.respondError(w, r, http.StatusBadRequest, models.CodeValidation, "Unknown node label", nil)
	case errors.As(err, &graphErr), errors.Is(err, graph.ErrUnavailable):
		logQueryFailure(r, view, opOf(graphErr), err)
		h.respondError(w, r, http.StatusInternalServerError, models.CodeGraphQueryFailed, "Failed to fetch "+view, nil)
	case errors.As(err, &dbErr):
		logQueryFailure(r, view, dbErr.Op, err)
		h.respondError(w, r, http.StatusInternalServerError, models.CodeQueryFailed, "Failed to fetch "+view, nil)
	default:
		logQueryFailure(r, view, "", err)
		h.respondError(w, r, http.StatusInternalServerError, models.CodeQueryFailed, "Failed to fetch "+view, nil)
	}
}

// logQueryFailure records the query intent and request id. SQL text and
// parameter values are never part of a QueryError's Op.
func logQueryFailure(r *http.Request, view, op string, err error) {
	logging.Ctx(r.Context()).Error().
		Str("view", view).
		Str("op", op).
		Str("error", logging.SanitizeError(err.Error())).
		Msg("Query failed")
}

func opOf(e *graph.QueryError) string {
	if e == nil {
		return ""
	}
	return e.Op
}

func notFoundMessage(view string) string {
	switch view {
	case viewEvent:
		return "Event not found"
	case viewSnapshot:
		return "Snapshot not found"
	case viewNode:
		return "Node not found"
	default:
		return "Not found"
	}
}

// View names used in error messages.
const (
	viewMetrics       = "metrics"
	viewTimeline      = "timeline"
	viewGeoEvents     = "geo events"
	viewEvents        = "events"
	viewEvent         = "event"
	viewEventTypes    = "event types"
	viewCameras       = "cameras"
	viewSnapshots     = "snapshots"
	viewSnapshot      = "snapshot"
	viewSnapshotTypes = "snapshot types"
	viewAnalytics     = "analytics"
	viewGraph         = "graph data"
	viewIdentities    = "identities"
	viewNode          = "node relationships"
)
