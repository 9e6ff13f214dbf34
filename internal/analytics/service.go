// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package analytics

import (
	"context"
	"time"

	"github.com/tomtom215/eventdash/internal/database"
)

// DefaultQueryTimeout bounds a view when no timeout is configured.
const DefaultQueryTimeout = 15 * time.Second

// topN is the size of ranked breakdowns.
const topN = 10

// Service runs the aggregation views against a Store.
type Service struct {
	store   database.Store
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now; tests use it to pin windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service. A non-positive timeout uses DefaultQueryTimeout.
func NewService(store database.Store, timeout time.Duration, opts ...Option) *Service {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	s := &Service{store: store, timeout: timeout, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Degraded reports whether the service is backed by a NullStore.
func (s *Service) Degraded() bool {
	return database.IsDegraded(s.store)
}

// Ping checks the underlying store.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}
