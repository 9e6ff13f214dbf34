// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package graph

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/tomtom215/eventdash/internal/metrics"
)

// Limits for the graph views.
const (
	RecordsDefault    = 100
	RecordsMax        = 1000
	IdentitiesDefault = 200
	IdentitiesMax     = 1000

	// maxConnections caps the neighbours returned for one node.
	maxConnections = 1000
)

// DefaultQueryTimeout bounds a view when no timeout is configured.
const DefaultQueryTimeout = 15 * time.Second

// Service runs the graph views against a Runner.
type Service struct {
	runner  Runner
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service. A nil runner is treated as NullGraph.
func NewService(r Runner, timeout time.Duration, opts ...Option) *Service {
	if r == nil {
		r = NullGraph{}
	}
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	s := &Service{runner: r, timeout: timeout, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether a real graph store is attached.
func (s *Service) Enabled() bool {
	return !IsDisabled(s.runner)
}

// Ping checks the graph store.
func (s *Service) Ping(ctx context.Context) error {
	return s.runner.Ping(ctx)
}

// Close releases the graph store.
func (s *Service) Close(ctx context.Context) error {
	return s.runner.Close(ctx)
}

// run executes one read, recording its duration and wrapping failures.
func (s *Service) run(ctx context.Context, op, cypher string, params map[string]interface{}) ([]*neo4j.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	records, err := s.runner.Run(ctx, cypher, params)
	metrics.RecordGraphQuery(op, time.Since(start), err)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	return records, nil
}

func clamp(limit, def, max int) int {
	switch {
	case limit == 0:
		return def
	case limit < 0:
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}
