// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package models

// TopicCount is an event count for one topic.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

// LocationCount splits events by coordinate presence. LocationStatus is
// "with_location" or "without_location".
type LocationCount struct {
	LocationStatus string `json:"location_status"`
	Count          int64  `json:"count"`
}

// CameraActivity is an event count for one channel.
type CameraActivity struct {
	ChannelID   string  `json:"channel_id"`
	ChannelName *string `json:"channel_name"`
	EventCount  int64   `json:"event_count"`
}

// MetricsSummary is the dashboard headline view. Field order is fixed.
type MetricsSummary struct {
	TimeRange           string           `json:"timeRange"`
	TotalEvents         int64            `json:"totalEvents"`
	RecentEvents        int64            `json:"recentEvents"`
	EventTypes          []TopicCount     `json:"eventTypes"`
	GeoDistribution     []LocationCount  `json:"geoDistribution"`
	CameraActivity      []CameraActivity `json:"cameraActivity"`
	TotalSnapshots      int64            `json:"totalSnapshots"`
	SnapshotsWithImages int64            `json:"snapshotsWithImages"`
}

// TimelinePoint is the count for one (bucket, topic) pair. TimeBucket is the
// bucket start in epoch milliseconds.
type TimelinePoint struct {
	TimeBucket int64   `json:"time_bucket"`
	Topic      *string `json:"topic"`
	EventCount int64   `json:"event_count"`
}

// Timeline is the bucketed series view.
type Timeline struct {
	TimeRange string          `json:"timeRange"`
	Interval  string          `json:"interval"`
	BucketMS  int64           `json:"bucket_ms"`
	Data      []TimelinePoint `json:"data"`
}

// GeoEvents is a capped list of events with usable coordinates.
type GeoEvents struct {
	TimeRange string         `json:"timeRange"`
	EventType string         `json:"eventType,omitempty"`
	Events    []EventSummary `json:"events"`
	Count     int            `json:"count"`
	Limit     int            `json:"limit"`
}

// Pagination describes an offset page. Pages is ceil(Total/Limit).
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// EventPage is one page of the events listing.
type EventPage struct {
	Events     []EventSummary `json:"events"`
	Pagination Pagination     `json:"pagination"`
}

// SnapshotPage is one page of the snapshots listing.
type SnapshotPage struct {
	Snapshots  []SnapshotListItem `json:"snapshots"`
	Pagination Pagination         `json:"pagination"`
}

// CameraSummary is a catalog entry for one channel.
type CameraSummary struct {
	ChannelID   string  `json:"channel_id"`
	ChannelName *string `json:"channel_name"`
	ChannelType *string `json:"channel_type"`
	EventCount  int64   `json:"event_count"`
}

// TypeCount is a snapshot count for one type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// LevelCount is an event count for one severity level. Missing levels are
// reported as "UNKNOWN".
type LevelCount struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

// WindowBounds echoes the effective window in epoch milliseconds.
type WindowBounds struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// AnalyticsBreakdown is the authenticated analytics view.
type AnalyticsBreakdown struct {
	TimeRange       string           `json:"timeRange"`
	Window          WindowBounds     `json:"window"`
	EventsByLevel   []LevelCount     `json:"eventsByLevel"`
	TopTopics       []TopicCount     `json:"topTopics"`
	TopCameras      []CameraActivity `json:"topCameras"`
	SnapshotsByType []TypeCount      `json:"snapshotsByType"`
}

// EventFilters are the effective listing filters echoed in the envelope.
type EventFilters struct {
	TimeRange string `json:"timeRange"`
	EventType string `json:"eventType,omitempty"`
	CameraID  string `json:"cameraId,omitempty"`
	Search    string `json:"search,omitempty"`
	Start     int64  `json:"start,omitempty"`
	End       int64  `json:"end,omitempty"`
	Page      int    `json:"page,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// SnapshotFilters are the effective snapshot listing filters.
type SnapshotFilters struct {
	TimeRange string `json:"timeRange"`
	EventID   string `json:"eventId,omitempty"`
	Type      string `json:"type,omitempty"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}
