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

// GeoVariant selects the caps and accepted tokens of a geographic listing.
type GeoVariant int

const (
	// GeoDashboard backs the map widget: 24h, 7d or 30d, default 100 rows, at most 1000.
	GeoDashboard GeoVariant = iota
	// GeoListing backs the events map page: any token, default 1000 rows, at most 2000.
	GeoListing
)

func (v GeoVariant) String() string {
	if v == GeoDashboard {
		return "dashboard"
	}
	return "listing"
}

// DefaultLimit is the row count used when no limit is requested.
func (v GeoVariant) DefaultLimit() int {
	if v == GeoDashboard {
		return database.GeoDashboardDefault
	}
	return database.GeoListingDefault
}

// ClampLimit applies the variant's row cap.
func (v GeoVariant) ClampLimit(limit int) int {
	if v == GeoDashboard {
		return database.ClampLimit(limit, database.GeoDashboardDefault, database.GeoDashboardMax)
	}
	return database.ClampLimit(limit, database.GeoListingDefault, database.GeoListingMax)
}

// Token normalizes token for the variant.
func (v GeoVariant) Token(token string) string {
	if v == GeoDashboard {
		return timerange.WithinOnly(token, timerange.Default24h,
			timerange.Token24h, timerange.Token7d, timerange.Token30d)
	}
	return token
}

const geoEventsSQL = `SELECT ` + eventColumns + `,
	` + snapshotCountColumn + `
FROM events e
WHERE %s
ORDER BY e.start_time DESC, e.id ASC
%s`

// GeoEvents returns the newest events with usable coordinates. Rows never carry
// missing or out-of-range coordinates.
func (s *Service) GeoEvents(ctx context.Context, v GeoVariant, token, eventType string, limit int) (*models.GeoEvents, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	w := timerange.Resolve(v.Token(token), s.now(), timerange.Default24h)
	limit = v.ClampLimit(limit)

	fs := query.Compose(w, "e", query.Dimensions{Category: eventType, RequireGeo: true})
	limitSQL, args := fs.Limit(limit)

	rows, err := database.Select(ctx, s.store, "geo."+v.String(),
		fmt.Sprintf(geoEventsSQL, fs.Where(), limitSQL), args, scanEventSummary)
	if err != nil {
		return nil, err
	}
	return &models.GeoEvents{
		TimeRange: string(w.Token),
		EventType: strings.TrimSpace(eventType),
		Events:    rows,
		Count:     len(rows),
		Limit:     limit,
	}, nil
}
