// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func f64(v float64) *float64 { return &v }

func TestEventHasLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat, lon *float64
		want     bool
	}{
		{"both present", f64(51.5), f64(-0.12), true},
		{"edges", f64(-90), f64(180), true},
		{"missing latitude", nil, f64(1), false},
		{"missing longitude", f64(1), nil, false},
		{"latitude out of range", f64(91), f64(0), false},
		{"longitude out of range", f64(0), f64(-181), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := Event{Latitude: tt.lat, Longitude: tt.lon}
			if got := e.HasLocation(); got != tt.want {
				t.Errorf("HasLocation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventNullColumnsEncodeAsNull(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(EventSummary{Event: Event{ID: "ev-1", StartTime: 42}, SnapshotCount: 2})
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{`"topic":null`, `"latitude":null`, `"start_time":42`, `"snapshot_count":2`} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s in %s", want, s)
		}
	}
}

func TestNewSuccessAndError(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	data := &MetricsSummary{TimeRange: "24h"}
	ok := NewSuccess(data, EventFilters{TimeRange: "24h"}, now, &Metadata{QueryTimeMS: 5})
	if ok.Status != StatusSuccess || ok.Data != data {
		t.Fatalf("unexpected success envelope %+v", ok)
	}
	if ok.Timestamp.Location() != time.UTC {
		t.Errorf("timestamp not UTC")
	}

	bad := NewError(CodeNotFound, "Event not found", now)
	b, err := json.Marshal(bad)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"code":"NOT_FOUND"`) || strings.Contains(s, `"data"`) || strings.Contains(s, `"metadata"`) {
		t.Errorf("unexpected error envelope %s", s)
	}
}

func TestIsGraphLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  bool
	}{
		{"Camera", true},
		{"PlateIdentity", true},
		{"camera", false},
		{"", false},
		{"Event) DETACH DELETE (n", false},
	}
	for _, tt := range tests {
		if got := IsGraphLabel(tt.label); got != tt.want {
			t.Errorf("IsGraphLabel(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
