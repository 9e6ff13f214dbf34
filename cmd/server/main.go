// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/eventdash/internal/analytics"
	"github.com/tomtom215/eventdash/internal/api"
	"github.com/tomtom215/eventdash/internal/config"
	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/logging"
	"github.com/tomtom215/eventdash/internal/metrics"
	"github.com/tomtom215/eventdash/internal/supervisor"
	"github.com/tomtom215/eventdash/internal/supervisor/services"
	ws "github.com/tomtom215/eventdash/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().
		Str("service", cfg.Server.ServiceName).
		Str("environment", cfg.Server.Environment).
		Str("driver", cfg.Database.Driver).
		Bool("mock_mode", cfg.MockMode).
		Msg("Starting EventDash")

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	graphSvc := openGraph(ctx, cfg)
	defer func() {
		if err := graphSvc.Close(context.Background()); err != nil {
			logging.Error().Err(err).Msg("Error closing graph driver")
		}
	}()

	catalogCache := openCache(ctx, &cfg.Cache)
	defer func() {
		if err := catalogCache.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache")
		}
	}()

	authc, err := newAuth(cfg)
	if err != nil {
		return err
	}

	views := analytics.NewService(store, cfg.Database.QueryTimeout)

	handler := api.NewHandler(api.HandlerDeps{
		Views:       views,
		Graph:       graphSvc,
		Cache:       catalogCache,
		CacheTTL:    cfg.Cache.TTL,
		Auth:        authc.middleware,
		JWT:         authc.jwt,
		Password:    authc.password,
		ServiceName: cfg.Server.ServiceName,
	})

	var hub *ws.Hub
	if cfg.Live.Enabled {
		hub = ws.NewHub()
	}

	router := api.NewRouter(handler,
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)),
		hub,
		api.RouterOptions{
			RequestTimeout: cfg.Server.Timeout,
			WSOrigins:      cfg.Security.CORSOrigins,
		})
	server := newHTTPServer(&cfg.Server, router.Setup())

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	if !database.IsDegraded(store) {
		tree.AddDataService(services.NewMonitorService("store", store, 0, func(ok bool) {
			metrics.SetDegraded(!ok)
		}))
	}
	if graphSvc.Enabled() {
		tree.AddDataService(services.NewMonitorService("graph", graphSvc, 0, nil))
	}

	if hub != nil {
		tree.AddMessagingService(services.NewWebSocketHubService(hub))
		tree.AddMessagingService(services.NewBroadcasterService(
			ws.NewBroadcaster(hub, views, cfg.Live.Interval)))
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", server.Addr).Bool("live", hub != nil).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
