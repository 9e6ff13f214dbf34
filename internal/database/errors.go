// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package database

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrQueryFailed is matched by every store failure surfaced by the executor.
	ErrQueryFailed = errors.New("query failed")
	// ErrNotFound is returned by SelectOne when no row matches.
	ErrNotFound = errors.New("not found")
)

// QueryError records which read failed. Op is a short intent such as
// "events.count"; it is safe to log and never contains SQL or arguments.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is makes every QueryError match ErrQueryFailed.
func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailed
}

// closeQuietly closes a resource in cleanup paths where the error is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
