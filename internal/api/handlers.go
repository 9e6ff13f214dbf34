// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"context"
	"time"

	"github.com/tomtom215/eventdash/internal/analytics"
	"github.com/tomtom215/eventdash/internal/auth"
	"github.com/tomtom215/eventdash/internal/cache"
	"github.com/tomtom215/eventdash/internal/graph"
	"github.com/tomtom215/eventdash/internal/logging"
	"github.com/tomtom215/eventdash/internal/models"
	"github.com/tomtom215/eventdash/internal/timerange"
)

// Views is the relational read side served by the handlers.
// *analytics.Service implements it.
type Views interface {
	MetricsSummary(ctx context.Context, token string) (*models.MetricsSummary, error)
	Timeline(ctx context.Context, token, eventType, cameraID string) (*models.Timeline, error)
	GeoEvents(ctx context.Context, v analytics.GeoVariant, token, eventType string, limit int) (*models.GeoEvents, error)
	Events(ctx context.Context, q analytics.EventQuery) (*models.EventPage, models.EventFilters, error)
	Snapshots(ctx context.Context, q analytics.SnapshotQuery) (*models.SnapshotPage, models.SnapshotFilters, error)
	EventDetail(ctx context.Context, id string) (*models.EventDetail, error)
	SnapshotDetail(ctx context.Context, id string) (*models.SnapshotDetail, error)
	EventTypes(ctx context.Context) ([]models.TopicCount, error)
	Cameras(ctx context.Context) ([]models.CameraSummary, error)
	SnapshotTypes(ctx context.Context) ([]models.TypeCount, error)
	Analytics(ctx context.Context, q timerange.Request) (*models.AnalyticsBreakdown, error)
	Degraded() bool
	Ping(ctx context.Context) error
}

// GraphViews is the graph read side. *graph.Service implements it.
type GraphViews interface {
	Enabled() bool
	Ping(ctx context.Context) error
	Records(ctx context.Context, limit int) (*models.GraphRecords, error)
	Identities(ctx context.Context, q graph.IdentityQuery) (*models.Identities, error)
	NodeRelationships(ctx context.Context, label, id string) (*models.NodeRelationships, error)
}

// Handler serves every API endpoint.
type Handler struct {
	views       Views
	graph       GraphViews
	cache       cache.Backend
	cacheTTL    time.Duration
	auth        *auth.Middleware
	jwt         *auth.JWTManager
	password    *auth.PasswordVerifier
	audit       *logging.AuditLogger
	serviceName string
	pingTimeout time.Duration
	startTime   time.Time
	now         func() time.Time
}

// HandlerDeps groups the collaborators of a Handler. Views is required; the
// rest fall back to disabled or no-op implementations when nil.
type HandlerDeps struct {
	Views       Views
	Graph       GraphViews
	Cache       cache.Backend
	CacheTTL    time.Duration
	Auth        *auth.Middleware
	JWT         *auth.JWTManager
	Password    *auth.PasswordVerifier
	ServiceName string
	// PingTimeout bounds each dependency check of the health probes.
	PingTimeout time.Duration
}

// NewHandler creates a Handler from deps.
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		views:       deps.Views,
		graph:       deps.Graph,
		cache:       deps.Cache,
		cacheTTL:    deps.CacheTTL,
		auth:        deps.Auth,
		jwt:         deps.JWT,
		password:    deps.Password,
		audit:       logging.NewAuditLogger(),
		serviceName: deps.ServiceName,
		pingTimeout: deps.PingTimeout,
		startTime:   time.Now(),
		now:         time.Now,
	}
	if h.graph == nil {
		h.graph = graph.NewService(nil, 0)
	}
	if h.cache == nil {
		h.cache = cache.Noop{}
	}
	if h.cacheTTL <= 0 {
		h.cacheTTL = cache.DefaultTTL
	}
	if h.auth == nil {
		h.auth = auth.NewMiddleware(nil, false, false)
	}
	if h.pingTimeout <= 0 {
		h.pingTimeout = DefaultPingTimeout
	}
	if h.serviceName == "" {
		h.serviceName = "eventdash"
	}
	return h
}
