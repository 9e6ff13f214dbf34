// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package websocket

import (
	"context"
	"time"

	"github.com/tomtom215/eventdash/internal/logging"
	"github.com/tomtom215/eventdash/internal/models"
	"github.com/tomtom215/eventdash/internal/timerange"
)

// DefaultBroadcastInterval is used when no interval is configured.
const DefaultBroadcastInterval = 30 * time.Second

// MetricsSource computes the summary pushed to live clients.
type MetricsSource interface {
	MetricsSummary(ctx context.Context, token string) (*models.MetricsSummary, error)
}

// MetricsUpdate is the payload of a metrics_update message.
type MetricsUpdate struct {
	Metrics   *models.MetricsSummary `json:"metrics"`
	Timestamp time.Time              `json:"timestamp"`
}

// Broadcaster pushes the 24h metrics summary to every connected client on a
// fixed interval. Ticks with no connected clients skip the query.
type Broadcaster struct {
	hub      *Hub
	source   MetricsSource
	interval time.Duration
	now      func() time.Time
}

// NewBroadcaster creates a Broadcaster. A non-positive interval uses
// DefaultBroadcastInterval.
func NewBroadcaster(hub *Hub, source MetricsSource, interval time.Duration) *Broadcaster {
	if interval <= 0 {
		interval = DefaultBroadcastInterval
	}
	return &Broadcaster{hub: hub, source: source, interval: interval, now: time.Now}
}

// Run ticks until ctx is canceled and returns ctx.Err().
func (b *Broadcaster) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	logging.Info().Dur("interval", b.interval).Msg("live metrics broadcaster started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			b.tick(ctx)
		}
	}
}

// tick broadcasts one update. Query failures are logged and the tick is skipped.
func (b *Broadcaster) tick(ctx context.Context) bool {
	if b.hub.GetClientCount() == 0 {
		return false
	}

	summary, err := b.source.MetricsSummary(ctx, string(timerange.Token24h))
	if err != nil {
		if ctx.Err() == nil {
			logging.Warn().Err(err).Msg("live metrics query failed")
		}
		return false
	}

	b.hub.BroadcastJSON(MessageTypeMetricsUpdate, MetricsUpdate{
		Metrics:   summary,
		Timestamp: b.now().UTC(),
	})
	return true
}
