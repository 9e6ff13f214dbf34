// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package analytics

import (
	"context"
	"fmt"

	"github.com/tomtom215/eventdash/internal/database"
	"github.com/tomtom215/eventdash/internal/database/query"
	"github.com/tomtom215/eventdash/internal/models"
	"github.com/tomtom215/eventdash/internal/timerange"
)

// Buckets are computed in a subquery so the grouping key is a plain column on
// both PostgreSQL and DuckDB.
const timelineSQL = `SELECT time_bucket, topic, COUNT(*) AS event_count
FROM (
	SELECT start_time - (start_time %% %s) AS time_bucket, topic
	FROM events
	WHERE %s
) buckets
GROUP BY time_bucket, topic
ORDER BY time_bucket ASC, topic ASC`

// Timeline returns event counts per bucket and topic. The bucket width comes
// from the token (default 24h, hourly buckets).
func (s *Service) Timeline(ctx context.Context, token, eventType, cameraID string) (*models.Timeline, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	w := timerange.Resolve(token, s.now(), timerange.Default24h)
	fs := query.Compose(w, "", query.Dimensions{Category: eventType, Channel: cameraID})

	bucket := w.BucketMillis()
	placeholder := fs.Next()
	args := append(fs.Args(), bucket)

	rows, err := database.Select(ctx, s.store, "timeline",
		fmt.Sprintf(timelineSQL, placeholder, fs.Where()), args,
		func(r database.RowScanner) (models.TimelinePoint, error) {
			var p models.TimelinePoint
			err := r.Scan(&p.TimeBucket, &p.Topic, &p.EventCount)
			return p, err
		})
	if err != nil {
		return nil, err
	}

	return &models.Timeline{
		TimeRange: string(w.Token),
		Interval:  w.Interval,
		BucketMS:  bucket,
		Data:      rows,
	}, nil
}
