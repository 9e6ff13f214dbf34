// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/eventdash/internal/analytics"
	"github.com/tomtom215/eventdash/internal/cache"
	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/models"
)

// Snapshots returns one page of snapshots joined to their events.
//
// @Summary Paged snapshots
// @Tags Snapshots
// @Produce json
// @Param timeRange query string false "Range token" default(7d)
// @Param eventId query string false "Parent event filter"
// @Param type query string false "Snapshot type filter"
// @Param page query int false "Page, minimum 1" default(1)
// @Param limit query int false "Page size, clamped to 1..500" default(50)
// @Success 200 {object} models.APIResponse{data=models.SnapshotPage}
// @Failure 500 {object} models.APIResponse
// @Router /snapshots [get]
func (h *Handler) Snapshots(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, filters, err := h.views.Snapshots(r.Context(), analytics.SnapshotQuery{
		TimeRange: getStringParam(r, paramTimeRange),
		EventID:   getStringParam(r, paramEventID),
		Type:      getStringParam(r, paramType),
		Page:      getIntParam(r, paramPage, 1),
		Limit:     getLimitParam(r, paramLimit, database.PageDefault),
	})
	if err != nil {
		h.respondViewError(w, r, viewSnapshots, err)
		return
	}
	h.respondSuccess(w, start, page, filters, false)
}

// SnapshotDetail returns one snapshot with its parent event fields.
//
// @Summary Snapshot detail
// @Tags Snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} models.APIResponse{data=models.SnapshotDetail}
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /snapshots/{id} [get]
func (h *Handler) SnapshotDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	detail, err := h.views.SnapshotDetail(r.Context(), id)
	if err != nil {
		h.respondViewError(w, r, viewSnapshot, err)
		return
	}
	h.respondSuccess(w, start, detail, map[string]string{"id": id}, false)
}

// SnapshotTypes returns the snapshot type catalog.
//
// @Summary Snapshot types
// @Tags Snapshots
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.TypeCount}
// @Failure 500 {object} models.APIResponse
// @Router /snapshots/types [get]
func (h *Handler) SnapshotTypes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	types, cached, err := cache.GetOrLoad(r.Context(), h.cache, cache.GenerateKey("SnapshotTypes", nil), h.cacheTTL,
		func(ctx context.Context) ([]models.TypeCount, error) {
			return h.views.SnapshotTypes(ctx)
		})
	if err != nil {
		h.respondViewError(w, r, viewSnapshotTypes, err)
		return
	}
	h.respondSuccess(w, start, types, nil, cached)
}
