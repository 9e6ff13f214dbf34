// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/eventdash/internal/graph"
	"github.com/tomtom215/eventdash/internal/timerange"
)

// NodeRequest identifies a graph node by label and id.
type NodeRequest struct {
	Label string `validate:"graphlabel"`
	ID    string `validate:"required,max=256"`
}

// DashboardGraph returns camera, event, image and tag records.
//
// @Summary Graph records
// @Description Requires authentication. Empty when the graph store is disabled.
// @Tags Graph
// @Produce json
// @Param limit query int false "Record cap, clamped to 1..1000" default(100)
// @Success 200 {object} models.APIResponse{data=models.GraphRecords}
// @Failure 401 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /dashboard/graph [get]
func (h *Handler) DashboardGraph(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	records, err := h.graph.Records(r.Context(), getLimitParam(r, paramLimit, graph.RecordsDefault))
	if err != nil {
		h.respondViewError(w, r, viewGraph, err)
		return
	}
	h.respondSuccess(w, start, records, DashboardFilters{Limit: records.Limit}, false)
}

// DashboardIdentities returns recognised faces and plates active in the window.
//
// @Summary Face and plate identities
// @Tags Graph
// @Produce json
// @Param timeRange query string false "Range token" default(30m)
// @Param start query int false "Window start, epoch ms"
// @Param end query int false "Window end, epoch ms"
// @Param facesLimit query int false "Face cap, clamped to 1..1000" default(200)
// @Param platesLimit query int false "Plate cap, clamped to 1..1000" default(200)
// @Success 200 {object} models.APIResponse{data=models.Identities}
// @Failure 401 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /dashboard/identities [get]
func (h *Handler) DashboardIdentities(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ids, err := h.graph.Identities(r.Context(), graph.IdentityQuery{
		Window: timerange.Request{
			Token: getStringParam(r, paramTimeRange),
			Start: getInt64Param(r, paramStart),
			End:   getInt64Param(r, paramEnd),
		},
		FacesLimit:  getLimitParam(r, paramFaces, graph.IdentitiesDefault),
		PlatesLimit: getLimitParam(r, paramPlates, graph.IdentitiesDefault),
	})
	if err != nil {
		h.respondViewError(w, r, viewIdentities, err)
		return
	}
	h.respondSuccess(w, start, ids, DashboardFilters{
		TimeRange: ids.TimeRange,
		Start:     ids.Window.Start,
		End:       ids.Window.End,
	}, false)
}

// DashboardNode returns a node and its direct neighbours.
//
// @Summary Node relationships
// @Tags Graph
// @Produce json
// @Param label path string true "Camera, Event, Image, Tag, FaceIdentity, PlateIdentity or Watchlist"
// @Param id path string true "Node id"
// @Success 200 {object} models.APIResponse{data=models.NodeRelationships}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /dashboard/graph/{label}/{id} [get]
func (h *Handler) DashboardNode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := NodeRequest{Label: chi.URLParam(r, "label"), ID: chi.URLParam(r, "id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		h.respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	rel, err := h.graph.NodeRelationships(r.Context(), req.Label, req.ID)
	if err != nil {
		h.respondViewError(w, r, viewNode, err)
		return
	}
	h.respondSuccess(w, start, rel, map[string]string{"label": req.Label, "id": req.ID}, false)
}
