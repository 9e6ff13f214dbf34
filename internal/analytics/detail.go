// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package analytics

import (
	"context"
	"strings"

	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/models"
)

const (
	eventByIDSQL = `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`

	eventSnapshotsSQL = `SELECT ` + snapshotColumns + `
FROM snapshots s
WHERE s.event_id = $1
ORDER BY s.created_at DESC, s.id ASC`

	snapshotByIDSQL = `SELECT ` + snapshotColumns + `,
	e.topic, e.module, e.level, e.channel_id, e.channel_name, e.channel_type,
	e.start_time, e.latitude, e.longitude
FROM snapshots s
JOIN events e ON s.event_id = e.id
WHERE s.id = $1`
)

// EventDetail returns the event and its snapshots, or database.ErrNotFound.
func (s *Service) EventDetail(ctx context.Context, id string) (*models.EventDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, database.ErrNotFound
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	event, err := database.SelectOne(ctx, s.store, "events.detail", eventByIDSQL, []interface{}{id}, scanEvent)
	if err != nil {
		return nil, err
	}
	snaps, err := database.Select(ctx, s.store, "events.detail.snapshots", eventSnapshotsSQL, []interface{}{id}, scanSnapshot)
	if err != nil {
		return nil, err
	}
	return &models.EventDetail{Event: event, Snapshots: snaps}, nil
}

// SnapshotDetail returns the snapshot with its event context, or database.ErrNotFound.
func (s *Service) SnapshotDetail(ctx context.Context, id string) (*models.SnapshotDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, database.ErrNotFound
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	snap, err := database.SelectOne(ctx, s.store, "snapshots.detail", snapshotByIDSQL, []interface{}{id}, scanSnapshotDetail)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
