// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/eventdash/internal/models"
	"github.com/tomtom215/eventdash/internal/validation"
)

// Query parameter names accepted by the API.
const (
	paramTimeRange = "timeRange"
	paramEventType = "eventType"
	paramCameraID  = "cameraId"
	paramEventID   = "eventId"
	paramType      = "type"
	paramSearch    = "search"
	paramPage      = "page"
	paramLimit     = "limit"
	paramStart     = "start"
	paramEnd       = "end"
	paramFaces     = "facesLimit"
	paramPlates    = "platesLimit"
)

// getStringParam returns the trimmed query parameter.
func getStringParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// getIntParam extracts an integer query parameter with a default value.
// Malformed values fall back to the default; range clamping is the view's job.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	return parseIntParam(r.URL.Query().Get(key), defaultValue)
}

// getLimitParam returns the requested row count, or defaultValue when the
// parameter is absent or malformed. Values below 1 become 1; the view applies
// the upper cap.
func getLimitParam(r *http.Request, key string, defaultValue int) int {
	n := getIntParam(r, key, defaultValue)
	if n < 1 {
		return 1
	}
	return n
}

func parseIntParam(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// getInt64Param parses epoch milliseconds; malformed values yield 0.
func getInt64Param(r *http.Request, key string) int64 {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return 0
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}
