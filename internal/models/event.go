// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package models

import "time"

// Event is one detected occurrence reported by a camera channel.
//
// StartTime (epoch milliseconds) is the only column used for windowing;
// CreatedAt is the insertion time and is informational. Nullable columns are
// pointers so they encode as JSON null.
type Event struct {
	ID          string    `json:"id"`
	Topic       *string   `json:"topic"`
	Module      *string   `json:"module"`
	Level       *string   `json:"level"`
	StartTime   int64     `json:"start_time"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	ChannelID   *string   `json:"channel_id"`
	ChannelName *string   `json:"channel_name"`
	ChannelType *string   `json:"channel_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasLocation reports whether both coordinates are present and in range.
func (e *Event) HasLocation() bool {
	if e.Latitude == nil || e.Longitude == nil {
		return false
	}
	return *e.Latitude >= -90 && *e.Latitude <= 90 && *e.Longitude >= -180 && *e.Longitude <= 180
}

// EventSummary is an Event with the number of snapshots that reference it.
type EventSummary struct {
	Event
	SnapshotCount int64 `json:"snapshot_count"`
}

// Snapshot is an artifact captured for exactly one event.
type Snapshot struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Type      *string   `json:"type"`
	Path      *string   `json:"path"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// SnapshotListItem is a snapshot with the parent event fields shown in listings.
type SnapshotListItem struct {
	Snapshot
	Topic       *string `json:"topic"`
	ChannelID   *string `json:"channel_id"`
	ChannelName *string `json:"channel_name"`
	StartTime   int64   `json:"start_time"`
}

// SnapshotDetail is a snapshot joined with its full parent event context.
type SnapshotDetail struct {
	Snapshot
	Topic       *string  `json:"topic"`
	Module      *string  `json:"module"`
	Level       *string  `json:"level"`
	ChannelID   *string  `json:"channel_id"`
	ChannelName *string  `json:"channel_name"`
	ChannelType *string  `json:"channel_type"`
	StartTime   int64    `json:"start_time"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// EventDetail is an event with its snapshots, newest first.
type EventDetail struct {
	Event     Event      `json:"event"`
	Snapshots []Snapshot `json:"snapshots"`
}
