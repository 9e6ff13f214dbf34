// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type catalogEntry struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// brokenBackend fails every operation.
type brokenBackend struct{ Noop }

func (brokenBackend) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("dial tcp: refused")
}

func (brokenBackend) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("dial tcp: refused")
}

func TestGetOrLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMemory(time.Minute)

	calls := 0
	load := func(context.Context) ([]catalogEntry, error) {
		calls++
		return []catalogEntry{{Name: "person", Count: 12}}, nil
	}

	first, cached, err := GetOrLoad(ctx, m, "types", 0, load)
	if err != nil || cached || len(first) != 1 {
		t.Fatalf("first GetOrLoad() = %v, %v, %v", first, cached, err)
	}
	second, cached, err := GetOrLoad(ctx, m, "types", 0, load)
	if err != nil || !cached {
		t.Fatalf("second GetOrLoad() cached = %v, err = %v", cached, err)
	}
	if second[0] != first[0] {
		t.Errorf("cached value = %+v, want %+v", second[0], first[0])
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
}

func TestGetOrLoad_LoadErrorNotCached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMemory(time.Minute)
	boom := errors.New("query failed")

	_, _, err := GetOrLoad(ctx, m, "k", 0, func(context.Context) (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("failed load should not be stored")
	}
}

func TestGetOrLoad_BackendFailureFallsThrough(t *testing.T) {
	t.Parallel()

	got, cached, err := GetOrLoad(context.Background(), brokenBackend{}, "k", 0,
		func(context.Context) (string, error) { return "fresh", nil })
	if err != nil || cached || got != "fresh" {
		t.Errorf("GetOrLoad() = %q, %v, %v", got, cached, err)
	}
}

func TestGetOrLoad_UndecodableEntryReloads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMemory(time.Minute)
	_ = m.Set(ctx, "k", []byte("{not json"), 0)

	got, cached, err := GetOrLoad(ctx, m, "k", 0, func(context.Context) (int, error) { return 7, nil })
	if err != nil || cached || got != 7 {
		t.Errorf("GetOrLoad() = %d, %v, %v", got, cached, err)
	}
}
