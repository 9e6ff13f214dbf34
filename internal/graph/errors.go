// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned by Open when the server cannot be reached.
	ErrUnavailable = errors.New("graph store unavailable")
	// ErrQueryFailed is matched by every failed Cypher read.
	ErrQueryFailed = errors.New("graph query failed")
	// ErrNotFound is returned when the requested node does not exist.
	ErrNotFound = errors.New("node not found")
	// ErrUnknownLabel is returned for node labels outside the allowed set.
	ErrUnknownLabel = errors.New("unknown node label")
)

// QueryError records which graph read failed. Op never contains Cypher or
// parameter values.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("graph %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is makes every QueryError match ErrQueryFailed.
func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailed
}
