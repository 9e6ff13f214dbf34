// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes returned in APIError.Code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeQueryFailed      = "QUERY_FAILED"
	CodeGraphQueryFailed = "GRAPH_QUERY_FAILED"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeInternal         = "INTERNAL_ERROR"
)

// APIResponse is the envelope every endpoint writes.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"timeRange": "24h", "totalEvents": 0, ...},
//	  "filters": {"timeRange": "24h"},
//	  "timestamp": "2026-03-01T12:00:00Z",
//	  "metadata": {"query_time_ms": 12}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "NOT_FOUND", "message": "Event not found"},
//	  "timestamp": "2026-03-01T12:00:00Z"
//	}
type APIResponse struct {
	Status    string      `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	Filters   interface{} `json:"filters,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Metadata  *Metadata   `json:"metadata,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information for a successful response.
type Metadata struct {
	QueryTimeMS int64 `json:"query_time_ms"`
	Cached      bool  `json:"cached,omitempty"`
	Degraded    bool  `json:"degraded,omitempty"`
}

// APIError is the error body. Message is safe to show to clients and never
// contains SQL or parameter values.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewSuccess builds a success envelope. data and filters are referenced, not copied.
func NewSuccess(data, filters interface{}, now time.Time, meta *Metadata) APIResponse {
	return APIResponse{
		Status:    StatusSuccess,
		Data:      data,
		Filters:   filters,
		Timestamp: now.UTC(),
		Metadata:  meta,
	}
}

// NewError builds an error envelope.
func NewError(code, message string, now time.Time) APIResponse {
	return APIResponse{
		Status:    StatusError,
		Timestamp: now.UTC(),
		Error:     &APIError{Code: code, Message: message},
	}
}

// HealthStatus is the /api/health body.
type HealthStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Store     string    `json:"store"`
	Graph     string    `json:"graph"`
	Degraded  bool      `json:"degraded"`
	Timestamp time.Time `json:"timestamp"`
}
