// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/eventdash/internal/logging"
	"github.com/tomtom215/eventdash/internal/models"
)

const (
	insertEventSQL = `INSERT INTO events
		(id, topic, module, level, start_time, latitude, longitude, channel_id, channel_name, channel_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	insertSnapshotSQL = `INSERT INTO snapshots
		(id, event_id, type, path, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
)

// Insert writes events and then snapshots. It backs the demo seed and test
// fixtures; the service itself never writes.
func Insert(ctx context.Context, s *SQLStore, events []models.Event, snapshots []models.Snapshot) error {
	for i := range events {
		e := &events[i]
		created := e.CreatedAt
		if created.IsZero() {
			created = time.UnixMilli(e.StartTime).UTC()
		}
		if err := s.Exec(ctx, insertEventSQL,
			e.ID, nullString(e.Topic), nullString(e.Module), nullString(e.Level), e.StartTime,
			nullFloat(e.Latitude), nullFloat(e.Longitude),
			nullString(e.ChannelID), nullString(e.ChannelName), nullString(e.ChannelType), created,
		); err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}
	for i := range snapshots {
		sn := &snapshots[i]
		created := sn.CreatedAt
		if created.IsZero() {
			created = time.Now().UTC()
		}
		if err := s.Exec(ctx, insertSnapshotSQL,
			sn.ID, sn.EventID, nullString(sn.Type), nullString(sn.Path), nullString(sn.ImageURL), created,
		); err != nil {
			return fmt.Errorf("insert snapshot %s: %w", sn.ID, err)
		}
	}
	return nil
}

type demoCamera struct {
	id, name, kind string
	lat, lon       float64
	located        bool
}

var demoCameras = []demoCamera{
	{"ch-101", "Front Gate", "PTZ", 40.7128, -74.0060, true},
	{"ch-102", "Loading Dock", "Fixed", 40.7131, -74.0049, true},
	{"ch-103", "Lobby Cam", "Dome", 40.7125, -74.0071, true},
	{"ch-104", "Parking North", "Fixed", 40.7140, -74.0082, true},
	{"ch-105", "Warehouse Aisle 3", "Fixed", 0, 0, false},
	{"ch-106", "Perimeter East", "Thermal", 40.7119, -74.0033, true},
}

var (
	demoTopics = []string{"motion", "person", "vehicle", "face_match", "plate_read", "intrusion"}
	demoLevels = []string{"INFO", "INFO", "WARNING", "CRITICAL", ""}
	demoTypes  = []string{"image", "thumbnail", "crop"}
)

// demoDataset builds a deterministic dataset anchored at now: 400 events over
// 30 days, the first 120 within the last 24 hours, with 0 to 2 snapshots each.
func demoDataset(now time.Time) ([]models.Event, []models.Snapshot) {
	const (
		numEvents   = 400
		recentCount = 120
	)
	rng := rand.New(rand.NewSource(20260301))
	ms := now.UnixMilli()

	events := make([]models.Event, 0, numEvents)
	snapshots := make([]models.Snapshot, 0, numEvents)

	for i := 0; i < numEvents; i++ {
		span := int64(30 * 24 * time.Hour / time.Millisecond)
		if i < recentCount {
			span = int64(24 * time.Hour / time.Millisecond)
		}
		start := ms - 1 - rng.Int63n(span-1)

		cam := demoCameras[rng.Intn(len(demoCameras))]
		topic := demoTopics[rng.Intn(len(demoTopics))]
		e := models.Event{
			ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("eventdash-demo-event-%d", i))).String(),
			Topic:       strPtr(topic),
			Module:      strPtr("analytics"),
			Level:       strPtr(demoLevels[rng.Intn(len(demoLevels))]),
			StartTime:   start,
			ChannelID:   strPtr(cam.id),
			ChannelName: strPtr(cam.name),
			ChannelType: strPtr(cam.kind),
			CreatedAt:   time.UnixMilli(start).UTC(),
		}
		if cam.located {
			lat := cam.lat + (rng.Float64()-0.5)*0.002
			lon := cam.lon + (rng.Float64()-0.5)*0.002
			e.Latitude, e.Longitude = &lat, &lon
		}
		events = append(events, e)

		shots := rng.Intn(3)
		for j := 0; j < shots; j++ {
			kind := demoTypes[rng.Intn(len(demoTypes))]
			sn := models.Snapshot{
				ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("eventdash-demo-snapshot-%d-%d", i, j))).String(),
				EventID:   e.ID,
				Type:      strPtr(kind),
				Path:      strPtr(fmt.Sprintf("/snapshots/%s/%d.jpg", cam.id, start)),
				CreatedAt: time.UnixMilli(start).UTC().Add(time.Duration(j+1) * time.Second),
			}
			if kind != "crop" {
				sn.ImageURL = strPtr(fmt.Sprintf("https://images.example.invalid/%s.jpg", sn.ID))
			}
			snapshots = append(snapshots, sn)
		}
	}
	return events, snapshots
}

// SeedDemo inserts the demo dataset when the events table is empty.
func SeedDemo(ctx context.Context, s *SQLStore, now time.Time) error {
	n, err := Count(ctx, s, "seed.count", "SELECT COUNT(*) FROM events", nil)
	if err != nil {
		return err
	}
	if n > 0 {
		logging.Debug().Int64("events", n).Msg("store not empty, skipping demo seed")
		return nil
	}

	events, snapshots := demoDataset(now)
	if err := Insert(ctx, s, events, snapshots); err != nil {
		return err
	}
	logging.Info().
		Int("events", len(events)).
		Int("snapshots", len(snapshots)).
		Msg("seeded demo dataset")
	return nil
}

// strPtr returns nil for the empty string so it is stored as NULL.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullString(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func nullFloat(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
