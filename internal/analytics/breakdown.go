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
	levelsSQL = `SELECT COALESCE(level, 'UNKNOWN') AS level_name, COUNT(*) AS event_count
FROM events
WHERE %s
GROUP BY 1
ORDER BY event_count DESC, level_name ASC`

	snapshotsByTypeSQL = `SELECT COALESCE(s.type, 'UNKNOWN') AS snapshot_type, COUNT(*) AS snapshot_count
FROM snapshots s
JOIN events e ON e.id = s.event_id
WHERE %s
GROUP BY 1
ORDER BY snapshot_count DESC, snapshot_type ASC`
)

// Analytics returns the level, topic, camera and snapshot-type breakdown for
// the window (default 30m).
func (s *Service) Analytics(ctx context.Context, q timerange.Request) (*models.AnalyticsBreakdown, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	now := s.now()
	w := q.Resolve(now, timerange.Default30m)
	out := &models.AnalyticsBreakdown{
		TimeRange: string(w.Token),
		Window:    models.WindowBounds{Start: w.Start, End: w.EffectiveEnd(now)},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fs := query.New(w, "")
		rows, err := database.Select(gctx, s.store, "analytics.levels",
			fmt.Sprintf(levelsSQL, fs.Where()), fs.Args(),
			func(r database.RowScanner) (models.LevelCount, error) {
				var c models.LevelCount
				err := r.Scan(&c.Level, &c.Count)
				return c, err
			})
		out.EventsByLevel = rows
		return err
	})

	g.Go(func() error {
		fs := query.New(w, "").AddClause("topic IS NOT NULL")
		rows, err := database.Select(gctx, s.store, "analytics.topics",
			fmt.Sprintf(topTopicsSQL, fs.Where(), topN), fs.Args(), scanTopicCount)
		out.TopTopics = rows
		return err
	})

	g.Go(func() error {
		fs := query.New(w, "").AddClause("channel_id IS NOT NULL")
		rows, err := database.Select(gctx, s.store, "analytics.cameras",
			fmt.Sprintf(topCamerasSQL, fs.Where(), topN), fs.Args(), scanCameraActivity)
		out.TopCameras = rows
		return err
	})

	g.Go(func() error {
		fs := query.New(w, "e")
		rows, err := database.Select(gctx, s.store, "analytics.snapshot_types",
			fmt.Sprintf(snapshotsByTypeSQL, fs.Where()), fs.Args(), scanTypeCount)
		out.SnapshotsByType = rows
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
