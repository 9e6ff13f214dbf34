// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/database/query"
	"github.com/tomtom215/eventdash/internal/models"
	"github.com/tomtom215/eventdash/internal/timerange"
)

// EventQuery are the events listing parameters as received. Out-of-range
// values are clamped, never rejected.
type EventQuery struct {
	TimeRange string
	// Start and End (epoch ms) override TimeRange when both are positive and ordered.
	Start     int64
	End       int64
	EventType string
	CameraID  string
	Search    string
	Page      int
	Limit     int
}

// SnapshotQuery are the snapshot listing parameters as received.
type SnapshotQuery struct {
	TimeRange string
	EventID   string
	Type      string
	Page      int
	Limit     int
}

const (
	eventsCountSQL = `SELECT COUNT(*) FROM events e WHERE %s`
	eventsPageSQL  = `SELECT ` + eventColumns + `,
	` + snapshotCountColumn + `
FROM events e
WHERE %s
ORDER BY e.start_time DESC, e.id ASC
%s`

	snapshotsCountSQL = `SELECT COUNT(*) FROM snapshots s JOIN events e ON s.event_id = e.id WHERE %s`
	snapshotsPageSQL  = `SELECT ` + snapshotColumns + `, e.topic, e.channel_id, e.channel_name, e.start_time
FROM snapshots s
JOIN events e ON s.event_id = e.id
WHERE %s
ORDER BY s.created_at DESC, s.id ASC
%s`
)

// Events returns one page of events (default window 7d) and the effective
// filters. Count and page are separate reads over the same filter set, so a
// page past the end is empty while Total still reports the match count.
func (s *Service) Events(ctx context.Context, q EventQuery) (*models.EventPage, models.EventFilters, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	w := timerange.Request{Token: q.TimeRange, Start: q.Start, End: q.End}.Resolve(s.now(), timerange.Default7d)
	page := database.ClampPage(q.Page)
	limit := database.ClampLimit(q.Limit, database.PageDefault, database.PageMax)

	filters := models.EventFilters{
		TimeRange: string(w.Token),
		EventType: strings.TrimSpace(q.EventType),
		CameraID:  strings.TrimSpace(q.CameraID),
		Search:    strings.TrimSpace(q.Search),
		Page:      page,
		Limit:     limit,
	}
	if w.IsAbsolute() {
		filters.Start, filters.End = w.Start, w.End
	}

	fs := query.Compose(w, "e", query.Dimensions{
		Category: q.EventType,
		Channel:  q.CameraID,
		Search:   q.Search,
	})

	total, err := database.Count(ctx, s.store, "events.count", fmt.Sprintf(eventsCountSQL, fs.Where()), fs.Args())
	if err != nil {
		return nil, filters, err
	}

	rows := []models.EventSummary{}
	if offset := database.Offset(page, limit); !pastEnd(offset, total) {
		pageSQL, args := fs.Page(limit, offset)
		rows, err = database.Select(ctx, s.store, "events.page",
			fmt.Sprintf(eventsPageSQL, fs.Where(), pageSQL), args, scanEventSummary)
		if err != nil {
			return nil, filters, err
		}
	}

	return &models.EventPage{
		Events:     rows,
		Pagination: pagination(page, limit, total),
	}, filters, nil
}

// Snapshots returns one page of snapshots joined to their events, newest
// snapshot first. The window applies to the parent event's start time.
func (s *Service) Snapshots(ctx context.Context, q SnapshotQuery) (*models.SnapshotPage, models.SnapshotFilters, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	w := timerange.Resolve(q.TimeRange, s.now(), timerange.Default7d)
	page := database.ClampPage(q.Page)
	limit := database.ClampLimit(q.Limit, database.PageDefault, database.PageMax)

	filters := models.SnapshotFilters{
		TimeRange: string(w.Token),
		EventID:   strings.TrimSpace(q.EventID),
		Type:      strings.TrimSpace(q.Type),
		Page:      page,
		Limit:     limit,
	}

	fs := query.ComposeSnapshots(w, "e", "s", query.SnapshotDimensions{EventID: q.EventID, Type: q.Type})

	total, err := database.Count(ctx, s.store, "snapshots.count", fmt.Sprintf(snapshotsCountSQL, fs.Where()), fs.Args())
	if err != nil {
		return nil, filters, err
	}

	rows := []models.SnapshotListItem{}
	if offset := database.Offset(page, limit); !pastEnd(offset, total) {
		pageSQL, args := fs.Page(limit, offset)
		rows, err = database.Select(ctx, s.store, "snapshots.page",
			fmt.Sprintf(snapshotsPageSQL, fs.Where(), pageSQL), args, scanSnapshotListItem)
		if err != nil {
			return nil, filters, err
		}
	}

	return &models.SnapshotPage{
		Snapshots:  rows,
		Pagination: pagination(page, limit, total),
	}, filters, nil
}

// pastEnd reports whether a page starting at offset cannot hold any of total
// rows. The first page is always read.
func pastEnd(offset int, total int64) bool {
	return offset > 0 && int64(offset) >= total
}

func pagination(page, limit int, total int64) models.Pagination {
	return models.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: database.Pages(total, limit),
	}
}
