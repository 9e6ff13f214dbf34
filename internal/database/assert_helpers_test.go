// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"context"
	"errors"
	"testing"
)

func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func checkQueryFailed(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrQueryFailed) {
		t.Fatalf("expected ErrQueryFailed, got %v", err)
	}
}

// failingStore fails every query with err.
type failingStore struct {
	err   error
	calls int
}

func (f *failingStore) Query(context.Context, string, []interface{}, func(RowScanner) error) error {
	f.calls++
	return f.err
}

func (f *failingStore) Ping(context.Context) error { return f.err }
func (f *failingStore) Close() error               { return nil }
