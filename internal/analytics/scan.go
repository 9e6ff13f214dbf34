// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package analytics

import (
	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/models"
)

// eventColumns matches scanEvent. Callers prefix with an alias where needed.
const eventColumns = `e.id, e.topic, e.module, e.level, e.start_time, e.latitude, e.longitude,
	e.channel_id, e.channel_name, e.channel_type, e.created_at`

const snapshotCountColumn = `(SELECT COUNT(*) FROM snapshots sc WHERE sc.event_id = e.id) AS snapshot_count`

func eventDest(e *models.Event) []any {
	return []any{
		&e.ID, &e.Topic, &e.Module, &e.Level, &e.StartTime, &e.Latitude, &e.Longitude,
		&e.ChannelID, &e.ChannelName, &e.ChannelType, &e.CreatedAt,
	}
}

func scanEvent(r database.RowScanner) (models.Event, error) {
	var e models.Event
	err := r.Scan(eventDest(&e)...)
	return e, err
}

func scanEventSummary(r database.RowScanner) (models.EventSummary, error) {
	var e models.EventSummary
	err := r.Scan(append(eventDest(&e.Event), &e.SnapshotCount)...)
	return e, err
}

const snapshotColumns = `s.id, s.event_id, s.type, s.path, s.image_url, s.created_at`

func snapshotDest(s *models.Snapshot) []any {
	return []any{&s.ID, &s.EventID, &s.Type, &s.Path, &s.ImageURL, &s.CreatedAt}
}

func scanSnapshot(r database.RowScanner) (models.Snapshot, error) {
	var s models.Snapshot
	err := r.Scan(snapshotDest(&s)...)
	return s, err
}

func scanSnapshotListItem(r database.RowScanner) (models.SnapshotListItem, error) {
	var s models.SnapshotListItem
	dest := append(snapshotDest(&s.Snapshot), &s.Topic, &s.ChannelID, &s.ChannelName, &s.StartTime)
	err := r.Scan(dest...)
	return s, err
}

func scanSnapshotDetail(r database.RowScanner) (models.SnapshotDetail, error) {
	var s models.SnapshotDetail
	dest := append(snapshotDest(&s.Snapshot),
		&s.Topic, &s.Module, &s.Level, &s.ChannelID, &s.ChannelName, &s.ChannelType,
		&s.StartTime, &s.Latitude, &s.Longitude)
	err := r.Scan(dest...)
	return s, err
}

func scanTopicCount(r database.RowScanner) (models.TopicCount, error) {
	var c models.TopicCount
	err := r.Scan(&c.Topic, &c.Count)
	return c, err
}

func scanCameraActivity(r database.RowScanner) (models.CameraActivity, error) {
	var c models.CameraActivity
	err := r.Scan(&c.ChannelID, &c.ChannelName, &c.EventCount)
	return c, err
}

func scanTypeCount(r database.RowScanner) (models.TypeCount, error) {
	var c models.TypeCount
	err := r.Scan(&c.Type, &c.Count)
	return c, err
}
