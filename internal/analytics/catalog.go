// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package analytics

import (
	"context"

	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/models"
)

// Catalogs span all time; they feed filter dropdowns.
const (
	eventTypesSQL = `SELECT topic, COUNT(*) AS event_count
FROM events
WHERE topic IS NOT NULL
GROUP BY topic
ORDER BY event_count DESC, topic ASC`

	camerasSQL = `SELECT channel_id, channel_name, channel_type, COUNT(*) AS event_count
FROM events
WHERE channel_id IS NOT NULL
GROUP BY channel_id, channel_name, channel_type
ORDER BY event_count DESC, channel_id ASC`

	snapshotTypesSQL = `SELECT type, COUNT(*) AS snapshot_count
FROM snapshots
WHERE type IS NOT NULL
GROUP BY type
ORDER BY snapshot_count DESC, type ASC`
)

// EventTypes lists every topic with its event count.
func (s *Service) EventTypes(ctx context.Context) ([]models.TopicCount, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return database.Select(ctx, s.store, "catalog.event_types", eventTypesSQL, nil, scanTopicCount)
}

// Cameras lists every channel with its event count.
func (s *Service) Cameras(ctx context.Context) ([]models.CameraSummary, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return database.Select(ctx, s.store, "catalog.cameras", camerasSQL, nil,
		func(r database.RowScanner) (models.CameraSummary, error) {
			var c models.CameraSummary
			err := r.Scan(&c.ChannelID, &c.ChannelName, &c.ChannelType, &c.EventCount)
			return c, err
		})
}

// SnapshotTypes lists every snapshot type with its count.
func (s *Service) SnapshotTypes(ctx context.Context) ([]models.TypeCount, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return database.Select(ctx, s.store, "catalog.snapshot_types", snapshotTypesSQL, nil, scanTypeCount)
}
