// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/eventdash/internal/analytics"
	"github.com/tomtom215/eventdash/internal/timerange"
)

// DashboardFilters echoes the effective dashboard parameters.
type DashboardFilters struct {
	TimeRange string `json:"timeRange"`
	EventType string `json:"eventType,omitempty"`
	CameraID  string `json:"cameraId,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Start     int64  `json:"start,omitempty"`
	End       int64  `json:"end,omitempty"`
}

// DashboardMetrics returns the headline metrics summary.
//
// @Summary Metrics summary
// @Description Totals, top topics, geo presence split, top cameras and snapshot totals for the window
// @Tags Dashboard
// @Produce json
// @Param timeRange query string false "30m, 1h, 4h, 12h, 24h, 7d or 30d" default(24h)
// @Success 200 {object} models.APIResponse{data=models.MetricsSummary}
// @Failure 500 {object} models.APIResponse
// @Router /dashboard/metrics [get]
func (h *Handler) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	summary, err := h.views.MetricsSummary(r.Context(), getStringParam(r, paramTimeRange))
	if err != nil {
		h.respondViewError(w, r, viewMetrics, err)
		return
	}
	h.respondSuccess(w, start, summary, DashboardFilters{TimeRange: summary.TimeRange}, false)
}

// DashboardTimeline returns event counts bucketed by time and topic.
//
// @Summary Event timeline
// @Tags Dashboard
// @Produce json
// @Param timeRange query string false "Range token" default(24h)
// @Param eventType query string false "Topic filter"
// @Param cameraId query string false "Channel filter"
// @Success 200 {object} models.APIResponse{data=models.Timeline}
// @Failure 500 {object} models.APIResponse
// @Router /dashboard/timeline [get]
func (h *Handler) DashboardTimeline(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventType := getStringParam(r, paramEventType)
	cameraID := getStringParam(r, paramCameraID)

	timeline, err := h.views.Timeline(r.Context(), getStringParam(r, paramTimeRange), eventType, cameraID)
	if err != nil {
		h.respondViewError(w, r, viewTimeline, err)
		return
	}
	h.respondSuccess(w, start, timeline, DashboardFilters{
		TimeRange: timeline.TimeRange,
		EventType: eventType,
		CameraID:  cameraID,
	}, false)
}

// DashboardGeoEvents returns the map widget's events.
//
// @Summary Geo events (dashboard)
// @Tags Dashboard
// @Produce json
// @Param timeRange query string false "24h, 7d or 30d" default(24h)
// @Param eventType query string false "Topic filter"
// @Param limit query int false "Row cap, clamped to 1..1000" default(100)
// @Success 200 {object} models.APIResponse{data=models.GeoEvents}
// @Failure 500 {object} models.APIResponse
// @Router /dashboard/events/geo [get]
func (h *Handler) DashboardGeoEvents(w http.ResponseWriter, r *http.Request) {
	h.geoEvents(w, r, analytics.GeoDashboard)
}

// EventsGeo returns the events map page's listing with the larger cap.
//
// @Summary Geo events (listing)
// @Tags Events
// @Produce json
// @Param timeRange query string false "Range token" default(24h)
// @Param eventType query string false "Topic filter"
// @Param limit query int false "Row cap, clamped to 1..2000" default(1000)
// @Success 200 {object} models.APIResponse{data=models.GeoEvents}
// @Failure 500 {object} models.APIResponse
// @Router /events/geo [get]
func (h *Handler) EventsGeo(w http.ResponseWriter, r *http.Request) {
	h.geoEvents(w, r, analytics.GeoListing)
}

func (h *Handler) geoEvents(w http.ResponseWriter, r *http.Request, v analytics.GeoVariant) {
	start := time.Now()
	eventType := getStringParam(r, paramEventType)

	geo, err := h.views.GeoEvents(r.Context(), v, getStringParam(r, paramTimeRange), eventType, getLimitParam(r, paramLimit, v.DefaultLimit()))
	if err != nil {
		h.respondViewError(w, r, viewGeoEvents, err)
		return
	}
	h.respondSuccess(w, start, geo, DashboardFilters{
		TimeRange: geo.TimeRange,
		EventType: eventType,
		Limit:     geo.Limit,
	}, false)
}

// DashboardAnalytics returns the level, topic, camera and snapshot type breakdown.
//
// @Summary Analytics breakdown
// @Description Requires authentication. start/end (epoch ms) override timeRange when both are set and ordered.
// @Tags Dashboard
// @Produce json
// @Param timeRange query string false "Range token" default(30m)
// @Param start query int false "Window start, epoch ms"
// @Param end query int false "Window end, epoch ms"
// @Success 200 {object} models.APIResponse{data=models.AnalyticsBreakdown}
// @Failure 401 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /dashboard/analytics [get]
func (h *Handler) DashboardAnalytics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := timerange.Request{
		Token: getStringParam(r, paramTimeRange),
		Start: getInt64Param(r, paramStart),
		End:   getInt64Param(r, paramEnd),
	}
	breakdown, err := h.views.Analytics(r.Context(), req)
	if err != nil {
		h.respondViewError(w, r, viewAnalytics, err)
		return
	}
	h.respondSuccess(w, start, breakdown, DashboardFilters{
		TimeRange: breakdown.TimeRange,
		Start:     breakdown.Window.Start,
		End:       breakdown.Window.End,
	}, false)
}
