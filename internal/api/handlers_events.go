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

// Events returns one page of events.
//
// @Summary Paged events
// @Tags Events
// @Produce json
// @Param timeRange query string false "Range token" default(7d)
// @Param start query int false "Window start, epoch ms"
// @Param end query int false "Window end, epoch ms"
// @Param eventType query string false "Topic filter"
// @Param cameraId query string false "Channel filter"
// @Param search query string false "Matches id, topic or channel name"
// @Param page query int false "Page, minimum 1" default(1)
// @Param limit query int false "Page size, clamped to 1..500" default(50)
// @Success 200 {object} models.APIResponse{data=models.EventPage}
// @Failure 500 {object} models.APIResponse
// @Router /events [get]
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, filters, err := h.views.Events(r.Context(), analytics.EventQuery{
		TimeRange: getStringParam(r, paramTimeRange),
		Start:     getInt64Param(r, paramStart),
		End:       getInt64Param(r, paramEnd),
		EventType: getStringParam(r, paramEventType),
		CameraID:  getStringParam(r, paramCameraID),
		Search:    getStringParam(r, paramSearch),
		Page:      getIntParam(r, paramPage, 1),
		Limit:     getLimitParam(r, paramLimit, database.PageDefault),
	})
	if err != nil {
		h.respondViewError(w, r, viewEvents, err)
		return
	}
	h.respondSuccess(w, start, page, filters, false)
}

// EventDetail returns one event with its snapshots.
//
// @Summary Event detail
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.APIResponse{data=models.EventDetail}
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /events/{id} [get]
func (h *Handler) EventDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	detail, err := h.views.EventDetail(r.Context(), id)
	if err != nil {
		h.respondViewError(w, r, viewEvent, err)
		return
	}
	h.respondSuccess(w, start, detail, map[string]string{"id": id}, false)
}

// EventTypes returns the topic catalog.
//
// @Summary Event types
// @Tags Events
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.TopicCount}
// @Failure 500 {object} models.APIResponse
// @Router /events/types [get]
func (h *Handler) EventTypes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	types, cached, err := cache.GetOrLoad(r.Context(), h.cache, cache.GenerateKey("EventTypes", nil), h.cacheTTL,
		func(ctx context.Context) ([]models.TopicCount, error) {
			return h.views.EventTypes(ctx)
		})
	if err != nil {
		h.respondViewError(w, r, viewEventTypes, err)
		return
	}
	h.respondSuccess(w, start, types, nil, cached)
}

// EventCameras returns the channel catalog.
//
// @Summary Cameras
// @Tags Events
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.CameraSummary}
// @Failure 500 {object} models.APIResponse
// @Router /events/cameras [get]
func (h *Handler) EventCameras(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	cameras, cached, err := cache.GetOrLoad(r.Context(), h.cache, cache.GenerateKey("Cameras", nil), h.cacheTTL,
		func(ctx context.Context) ([]models.CameraSummary, error) {
			return h.views.Cameras(ctx)
		})
	if err != nil {
		h.respondViewError(w, r, viewCameras, err)
		return
	}
	h.respondSuccess(w, start, cameras, nil, cached)
}
