// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLStore(db, DriverPostgres), mock
}

func scanIDTopic(r RowScanner) ([2]string, error) {
	var out [2]string
	err := r.Scan(&out[0], &out[1])
	return out, err
}

func TestSelectCollectsRows(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, topic FROM events WHERE start_time >= $1")).
		WithArgs(int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "topic"}).
			AddRow("a", "motion").
			AddRow("b", "person"))

	got, err := Select(context.Background(), s, "test.select",
		"SELECT id, topic FROM events WHERE start_time >= $1", []interface{}{int64(100)}, scanIDTopic)
	checkNoError(t, err)
	if len(got) != 2 || got[1][0] != "b" {
		t.Errorf("unexpected rows %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSelectEmptyIsNotNil(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id", "topic"}))

	got, err := Select(context.Background(), s, "test.empty", "SELECT id, topic FROM events", nil, scanIDTopic)
	checkNoError(t, err)
	if got == nil || len(got) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", got)
	}
}

func TestSelectNormalizesFailures(t *testing.T) {
	t.Parallel()

	t.Run("query error", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

		rows, err := Select(context.Background(), s, "events.page", "SELECT id, topic FROM events", nil, scanIDTopic)
		checkQueryFailed(t, err)
		if rows != nil {
			t.Errorf("expected no rows on failure, got %v", rows)
		}
		var qe *QueryError
		if !errors.As(err, &qe) || qe.Op != "events.page" {
			t.Errorf("expected QueryError with op, got %v", err)
		}
	})

	t.Run("row error mid-stream", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)
		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id", "topic"}).
			AddRow("a", "motion").
			AddRow("b", "person").
			RowError(1, errors.New("network reset")))

		rows, err := Select(context.Background(), s, "events.page", "SELECT id, topic FROM events", nil, scanIDTopic)
		checkQueryFailed(t, err)
		if rows != nil {
			t.Errorf("partial rows leaked: %v", rows)
		}
	})

	t.Run("scan error", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)
		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a"))

		_, err := Select(context.Background(), s, "events.page", "SELECT id FROM events", nil, scanIDTopic)
		checkQueryFailed(t, err)
	})
}

func TestSelectOneNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT").WithArgs("missing").WillReturnRows(sqlmock.NewRows([]string{"id", "topic"}))

	_, err := SelectOne(context.Background(), s, "events.detail", "SELECT id, topic FROM events WHERE id = $1",
		[]interface{}{"missing"}, scanIDTopic)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if errors.Is(err, ErrQueryFailed) {
		t.Error("not-found must not match ErrQueryFailed")
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM events")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(125)))

	n, err := Count(context.Background(), s, "events.count", "SELECT COUNT(*) FROM events", nil)
	checkNoError(t, err)
	if n != 125 {
		t.Errorf("Count = %d, want 125", n)
	}
}

func TestNullStoreYieldsNothing(t *testing.T) {
	t.Parallel()

	var s Store = NullStore{}
	n, err := Count(context.Background(), s, "events.count", "SELECT COUNT(*) FROM events", nil)
	checkNoError(t, err)
	if n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
	rows, err := Select(context.Background(), s, "events.page", "SELECT id, topic FROM events", nil, scanIDTopic)
	checkNoError(t, err)
	if len(rows) != 0 {
		t.Errorf("rows = %v, want none", rows)
	}
	if !IsDegraded(s) || !IsDegraded(NewBreakerStore(s, BreakerSettings{Name: "null-test"})) {
		t.Error("NullStore should report degraded")
	}
	if IsDegraded(&failingStore{}) {
		t.Error("failingStore should not report degraded")
	}
}

func TestClampLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		limit, def, max int
		want            int
	}{
		{"zero uses default", 0, PageDefault, PageMax, 50},
		{"negative clamps to one", -3, GeoDashboardDefault, GeoDashboardMax, 1},
		{"negative on listing cap", -5, GeoListingDefault, GeoListingMax, 1},
		{"within range", 25, PageDefault, PageMax, 25},
		{"one", 1, PageDefault, PageMax, 1},
		{"geo dashboard cap", 5000, GeoDashboardDefault, GeoDashboardMax, 1000},
		{"geo listing cap", 5000, GeoListingDefault, GeoListingMax, 2000},
		{"page cap", 501, PageDefault, PageMax, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClampLimit(tt.limit, tt.def, tt.max); got != tt.want {
				t.Errorf("ClampLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestPagesAndOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 50, 0},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{125, 50, 3},
		{125, 0, 0},
	}
	for _, tt := range tests {
		if got := Pages(tt.total, tt.limit); got != tt.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}

	if got := Offset(0, 50); got != 0 {
		t.Errorf("Offset(0) = %d, want 0", got)
	}
	if got := Offset(3, 50); got != 100 {
		t.Errorf("Offset(3) = %d, want 100", got)
	}
	if got := Offset(1e18, 50); got != math.MaxInt {
		t.Errorf("Offset(1e18) = %d, want saturation at %d", got, math.MaxInt)
	}
	if got := Offset(math.MaxInt, 500); got < 0 {
		t.Errorf("Offset(MaxInt) = %d, want non-negative", got)
	}
	if got := ClampPage(-1); got != 1 {
		t.Errorf("ClampPage(-1) = %d, want 1", got)
	}
}
