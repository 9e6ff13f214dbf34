// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package services

import (
	"context"
	"time"

	"github.com/tomtom215/eventdash/internal/logging"
)

// DefaultMonitorInterval is how often a monitored backend is pinged.
const DefaultMonitorInterval = 30 * time.Second

// Pinger is satisfied by database.Store and *graph.Service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MonitorService pings a backend on an interval and reports reachability
// changes. It never fails: an unreachable backend is logged, not restarted.
type MonitorService struct {
	name     string
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	onChange func(reachable bool)

	reachable bool
	checked   bool
}

// NewMonitorService creates a monitor for pinger. onChange may be nil.
func NewMonitorService(name string, pinger Pinger, interval time.Duration, onChange func(reachable bool)) *MonitorService {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	timeout := 5 * time.Second
	if interval < timeout {
		timeout = interval
	}
	return &MonitorService{
		name:     name,
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		onChange: onChange,
	}
}

// Serve implements suture.Service.
func (m *MonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *MonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.pinger.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	reachable := err == nil
	if m.checked && reachable == m.reachable {
		return
	}
	m.checked = true
	m.reachable = reachable

	if reachable {
		logging.Info().Str("backend", m.name).Msg("Backend reachable")
	} else {
		logging.Warn().Str("backend", m.name).Str("error", logging.SanitizeError(err.Error())).Msg("Backend unreachable")
	}
	if m.onChange != nil {
		m.onChange(reachable)
	}
}

func (m *MonitorService) String() string {
	return m.name + "-monitor"
}
