// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestMemory(ttl time.Duration) (*Memory, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	return newMemory(ttl, clock.Now), clock
}

func TestMemory_BasicOperations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMemory(time.Minute)

	if err := m.Set(ctx, "key1", []byte("value1"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := m.Get(ctx, "key1")
	if err != nil || !ok || string(got) != "value1" {
		t.Fatalf("Get(key1) = %q, %v, %v", got, ok, err)
	}

	if _, ok, _ := m.Get(ctx, "key2"); ok {
		t.Error("key2 should not exist")
	}

	stats := m.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.TotalKeys != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if rate := m.HitRate(); rate != 50 {
		t.Errorf("HitRate() = %v, want 50", rate)
	}
}

func TestMemory_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMemory(time.Minute)

	src := []byte("abc")
	_ = m.Set(ctx, "k", src, 0)
	src[0] = 'x'

	got, _, _ := m.Get(ctx, "k")
	got[1] = 'y'

	again, _, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated: %q", again)
	}
}

func TestMemory_Expiration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, clock := newTestMemory(time.Minute)

	_ = m.Set(ctx, "default", []byte("1"), 0)
	_ = m.Set(ctx, "short", []byte("2"), 10*time.Second)

	clock.Advance(10 * time.Second)
	if _, ok, _ := m.Get(ctx, "short"); ok {
		t.Error("short entry should expire at its own ttl")
	}
	if _, ok, _ := m.Get(ctx, "default"); !ok {
		t.Error("default entry should still be live")
	}

	clock.Advance(time.Minute)
	if _, ok, _ := m.Get(ctx, "default"); ok {
		t.Error("default entry should have expired")
	}
	if ev := m.GetStats().Evictions; ev != 2 {
		t.Errorf("Evictions = %d, want 2", ev)
	}
}

func TestMemory_CleanupSweepsExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, clock := newTestMemory(time.Minute)

	_ = m.Set(ctx, "a", []byte("1"), time.Second)
	_ = m.Set(ctx, "b", []byte("2"), time.Hour)
	clock.Advance(2 * time.Second)

	m.cleanup()

	stats := m.GetStats()
	if stats.TotalKeys != 1 || stats.Evictions != 1 {
		t.Errorf("stats after cleanup = %+v", stats)
	}
	if !stats.LastCleanup.Equal(clock.Now()) {
		t.Errorf("LastCleanup = %v, want %v", stats.LastCleanup, clock.Now())
	}
}

func TestMemory_DeleteAndClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMemory(time.Minute)

	for _, k := range []string{"k1", "k2", "k3"} {
		_ = m.Set(ctx, k, []byte(k), 0)
	}
	_ = m.Delete(ctx, "k1")
	_ = m.Delete(ctx, "missing")
	if _, ok, _ := m.Get(ctx, "k1"); ok {
		t.Error("k1 should be deleted")
	}

	m.Clear()
	for _, k := range []string{"k2", "k3"} {
		if _, ok, _ := m.Get(ctx, k); ok {
			t.Errorf("%s should be cleared", k)
		}
	}
	stats := m.GetStats()
	if stats.Evictions != 3 || stats.TotalKeys != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestMemory_CloseIsIdempotent(t *testing.T) {
	t.Parallel()
	m := NewMemory(time.Minute)
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m, _ := newTestMemory(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := GenerateKey("worker", i%4)
			for j := 0; j < 100; j++ {
				_ = m.Set(ctx, key, []byte{byte(j)}, 0)
				_, _, _ = m.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	if keys := m.GetStats().TotalKeys; keys != 4 {
		t.Errorf("TotalKeys = %d, want 4", keys)
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	a := GenerateKey("catalog", map[string]string{"kind": "cameras"})
	b := GenerateKey("catalog", map[string]string{"kind": "cameras"})
	c := GenerateKey("catalog", map[string]string{"kind": "types"})
	if a != b {
		t.Errorf("same params produced different keys: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different params produced the same key")
	}
	if len(a) != len("catalog:")+32 {
		t.Errorf("key %q has unexpected length", a)
	}
}
