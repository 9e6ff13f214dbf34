// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tomtom215/eventdash/internal/api/docs" // registers the swagger spec
	"github.com/tomtom215/eventdash/internal/auth"
	"github.com/tomtom215/eventdash/internal/middleware"
	"github.com/tomtom215/eventdash/internal/websocket"
)

// DefaultRequestTimeout bounds API handlers when RouterOptions.RequestTimeout is zero.
const DefaultRequestTimeout = 30 * time.Second

// RouterOptions configures Setup.
type RouterOptions struct {
	RequestTimeout time.Duration
	// WSOrigins are the origins allowed to open the live feed. Empty allows
	// same-origin requests only.
	WSOrigins []string
}

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
	hub           *websocket.Hub
	opts          RouterOptions
}

// NewRouter creates a Router. hub may be nil, in which case /api/ws is not served.
func NewRouter(handler *Handler, chiMw *ChiMiddleware, hub *websocket.Hub, opts RouterOptions) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	return &Router{
		handler:       handler,
		middleware:    handler.auth,
		chiMiddleware: chiMw,
		hub:           hub,
		opts:          opts,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Applied to every route, in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS())

	r.Route("/api", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		r.Route("/health", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Get("/", router.handler.Health)
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Route("/login", func(r chi.Router) {
			r.With(router.chiMiddleware.RateLimitLogin()).Post("/", router.handler.Login)
			r.Get("/", router.handler.Session)
			r.Delete("/", router.handler.Logout)
		})

		if router.hub != nil {
			r.With(router.chiMiddleware.RateLimitWebSocket()).
				Get("/ws", websocket.Handler(router.hub, router.opts.WSOrigins))
		}

		// Data routes: bounded, compressed and rate limited
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(chimiddleware.Timeout(router.opts.RequestTimeout))
			r.Use(chimiddleware.Compress(5, "application/json"))

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/metrics", router.handler.DashboardMetrics)
				r.Get("/timeline", router.handler.DashboardTimeline)
				r.Get("/events/geo", router.handler.DashboardGeoEvents)

				r.Group(func(r chi.Router) {
					r.Use(router.middleware.RequireAuth)
					r.Get("/analytics", router.handler.DashboardAnalytics)
					r.Get("/graph", router.handler.DashboardGraph)
					r.Get("/graph/{label}/{id}", router.handler.DashboardNode)
					r.Get("/identities", router.handler.DashboardIdentities)
				})
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", router.handler.Events)
				r.Get("/types", router.handler.EventTypes)
				r.Get("/cameras", router.handler.EventCameras)
				r.Get("/geo", router.handler.EventsGeo)
				r.Get("/{id}", router.handler.EventDetail)
			})

			r.Route("/snapshots", func(r chi.Router) {
				r.Get("/", router.handler.Snapshots)
				r.Get("/types", router.handler.SnapshotTypes)
				r.Get("/{id}", router.handler.SnapshotDetail)
			})
		})
	})

	// Observability
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
