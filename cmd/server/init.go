// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/eventdash/internal/auth"
	"github.com/tomtom215/eventdash/internal/cache"
	"github.com/tomtom215/eventdash/internal/config"
	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/graph"
	"github.com/tomtom215/eventdash/internal/logging"
	"github.com/tomtom215/eventdash/internal/metrics"
)

// openStore returns the relational store. Mock mode, or a failed open with
// FailOpen set, yields a NullStore and flips the degraded gauge.
func openStore(ctx context.Context, cfg *config.Config) (database.Store, error) {
	if cfg.MockMode {
		logging.Warn().Msg("Mock mode enabled: every view answers with empty data")
		metrics.SetDegraded(true)
		return database.NullStore{}, nil
	}

	store, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		if !cfg.Database.FailOpen {
			return nil, err
		}
		logging.Warn().
			Str("error", logging.SanitizeError(err.Error())).
			Msg("Store unavailable, serving empty results (degraded mode)")
		metrics.SetDegraded(true)
		return database.NullStore{}, nil
	}

	metrics.SetDegraded(false)
	return database.NewBreakerStore(store, database.DefaultBreakerSettings()), nil
}

// openGraph returns the graph service. A disabled or unreachable graph
// database leaves the relationship views empty.
func openGraph(ctx context.Context, cfg *config.Config) *graph.Service {
	if cfg.MockMode || !cfg.Graph.Enabled {
		logging.Info().Msg("Graph views disabled")
		return graph.NewService(nil, cfg.Database.QueryTimeout)
	}

	store, err := graph.Open(ctx, &cfg.Graph)
	if err != nil {
		logging.Warn().
			Str("error", logging.SanitizeError(err.Error())).
			Msg("Graph database unavailable, relationship views will be empty")
		return graph.NewService(nil, cfg.Database.QueryTimeout)
	}
	return graph.NewService(store, cfg.Database.QueryTimeout)
}

// openCache falls back to the in-memory cache when redis cannot be reached.
func openCache(ctx context.Context, cfg *config.CacheConfig) cache.Backend {
	backend, err := cache.New(ctx, cfg)
	if err != nil {
		logging.Warn().Err(err).Str("backend", cfg.Backend).Msg("Cache backend unavailable, using memory")
		return cache.NewMemory(cfg.TTL)
	}
	logging.Info().Str("backend", backend.Name()).Dur("ttl", cfg.TTL).Msg("Catalog cache ready")
	return backend
}

// authComponents groups what the login routes need.
type authComponents struct {
	jwt        *auth.JWTManager
	password   *auth.PasswordVerifier
	middleware *auth.Middleware
}

// newAuth builds the session stack. With auth disabled every route is open
// and no secrets are required.
func newAuth(cfg *config.Config) (*authComponents, error) {
	sec := &cfg.Security
	secure := cfg.Server.IsProduction()

	if !sec.AuthEnabled {
		logging.Warn().Msg("Authentication is DISABLED: protected views are publicly accessible")
		return &authComponents{middleware: auth.NewMiddleware(nil, false, secure)}, nil
	}

	jwtManager, err := auth.NewJWTManager(sec)
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}
	verifier, err := auth.NewPasswordVerifier(sec.AppPassword)
	if err != nil {
		return nil, fmt.Errorf("password: %w", err)
	}
	logging.Info().Dur("session_timeout", jwtManager.Timeout()).Msg("Password authentication enabled")

	return &authComponents{
		jwt:        jwtManager,
		password:   verifier,
		middleware: auth.NewMiddleware(jwtManager, true, secure),
	}, nil
}

func newHTTPServer(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Timeout,
		WriteTimeout:      cfg.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
