// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/database/query"
	"github.com/tomtom215/eventdash/internal/models"
	"github.com/tomtom215/eventdash/internal/timerange"
)

const (
	// Total counts every event; recent counts the window.
	totalsSQL = `SELECT COUNT(*) AS total_events,
	COUNT(CASE WHEN start_time >= $1 THEN 1 END) AS recent_events
FROM events`

	topTopicsSQL = `SELECT topic, COUNT(*) AS event_count
FROM events
WHERE %s
GROUP BY topic
ORDER BY event_count DESC, topic ASC
LIMIT %d`

	locationSplitSQL = `SELECT
	CASE WHEN latitude IS NOT NULL AND longitude IS NOT NULL THEN 'with_location'
	ELSE 'without_location' END AS location_status,
	COUNT(*) AS event_count
FROM events
WHERE %s
GROUP BY 1
ORDER BY 1`

	topCamerasSQL = `SELECT channel_id, channel_name, COUNT(*) AS event_count
FROM events
WHERE %s
GROUP BY channel_id, channel_name
ORDER BY event_count DESC, channel_id ASC
LIMIT %d`

	snapshotTotalsSQL = `SELECT COUNT(*) AS total_snapshots,
	COUNT(CASE WHEN s.image_url IS NOT NULL THEN 1 END) AS with_images
FROM snapshots s
JOIN events e ON s.event_id = e.id
WHERE %s`
)

// MetricsSummary returns the dashboard headline numbers for token (default 24h).
// The five reads run concurrently; any failure fails the whole view.
func (s *Service) MetricsSummary(ctx context.Context, token string) (*models.MetricsSummary, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	w := timerange.Resolve(token, s.now(), timerange.Default24h)
	out := &models.MetricsSummary{TimeRange: string(w.Token)}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := database.Select(gctx, s.store, "metrics.totals", totalsSQL, []interface{}{w.Start},
			func(r database.RowScanner) ([2]int64, error) {
				var v [2]int64
				err := r.Scan(&v[0], &v[1])
				return v, err
			})
		if err != nil {
			return err
		}
		if len(totals) > 0 {
			out.TotalEvents, out.RecentEvents = totals[0][0], totals[0][1]
		}
		return nil
	})

	g.Go(func() error {
		fs := query.New(w, "").AddClause("topic IS NOT NULL")
		rows, err := database.Select(gctx, s.store, "metrics.topics",
			fmt.Sprintf(topTopicsSQL, fs.Where(), topN), fs.Args(), scanTopicCount)
		out.EventTypes = rows
		return err
	})

	g.Go(func() error {
		fs := query.New(w, "")
		rows, err := database.Select(gctx, s.store, "metrics.locations",
			fmt.Sprintf(locationSplitSQL, fs.Where()), fs.Args(),
			func(r database.RowScanner) (models.LocationCount, error) {
				var c models.LocationCount
				err := r.Scan(&c.LocationStatus, &c.Count)
				return c, err
			})
		out.GeoDistribution = rows
		return err
	})

	g.Go(func() error {
		fs := query.New(w, "").AddClause("channel_id IS NOT NULL")
		rows, err := database.Select(gctx, s.store, "metrics.cameras",
			fmt.Sprintf(topCamerasSQL, fs.Where(), topN), fs.Args(), scanCameraActivity)
		out.CameraActivity = rows
		return err
	})

	g.Go(func() error {
		fs := query.New(w, "e")
		totals, err := database.Select(gctx, s.store, "metrics.snapshots",
			fmt.Sprintf(snapshotTotalsSQL, fs.Where()), fs.Args(),
			func(r database.RowScanner) ([2]int64, error) {
				var v [2]int64
				err := r.Scan(&v[0], &v[1])
				return v, err
			})
		if err != nil {
			return err
		}
		if len(totals) > 0 {
			out.TotalSnapshots, out.SnapshotsWithImages = totals[0][0], totals[0][1]
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
