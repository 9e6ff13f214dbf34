// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/eventdash/internal/models"
)

// DefaultPingTimeout bounds a health probe's dependency check when
// HandlerDeps.PingTimeout is zero.
const DefaultPingTimeout = 5 * time.Second

// Component states reported by /api/health.
const (
	componentConnected    = "connected"
	componentDegraded     = "degraded"
	componentDisabled     = "disabled"
	componentDisconnected = "disconnected"
)

// Health reports overall status and the state of each store.
//
// @Summary Health check
// @Description Returns "ok" when the relational store is reachable, "degraded" otherwise
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	store := componentConnected
	switch {
	case h.views.Degraded():
		store = componentDegraded
	case h.ping(r.Context(), h.views.Ping) != nil:
		store = componentDisconnected
	}

	graphState := componentDisabled
	if h.graph.Enabled() {
		graphState = componentConnected
		if h.ping(r.Context(), h.graph.Ping) != nil {
			graphState = componentDisconnected
		}
	}

	status := "ok"
	if store != componentConnected {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:    status,
		Service:   h.serviceName,
		Store:     store,
		Graph:     graphState,
		Degraded:  h.views.Degraded(),
		Timestamp: h.now().UTC(),
	}
	h.respondSuccess(w, start, health, nil, false)
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.respondSuccess(w, time.Now(), map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, nil, false)
}

// HealthReady handles readiness probe requests. Degraded mode counts as
// ready since every view still answers with empty data.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.views.Degraded() || h.ping(r.Context(), h.views.Ping) == nil

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"store_ready":    ready,
			"ready_to_serve": ready,
			"uptime":         time.Since(h.startTime).Seconds(),
		},
		Timestamp: h.now().UTC(),
	})
}

// ping runs one dependency check bounded by the handler's ping timeout.
func (h *Handler) ping(ctx context.Context, check func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, h.pingTimeout)
	defer cancel()
	return check(ctx)
}
