// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator with two domain tags and
// human-readable error messages that convert to the API error format.
//
// # Quick Start
//
//	type graphNodeRequest struct {
//	    Label string `validate:"required,graphlabel"`
//	    ID    string `validate:"required,max=128"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - timerange: value is a supported range token
//   - graphlabel: value is a known graph node label (labels cannot be bound as
//     Cypher parameters, so they are whitelisted before interpolation)
//
// Query parameters that only bound result sizes (limit, page) are clamped by
// the database package rather than validated here.
package validation
