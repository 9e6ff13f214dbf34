// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/eventdash/internal/models"
)

const maxLoginBodyBytes = 4 << 10

// LoginRequest is the POST /api/login body.
type LoginRequest struct {
	Password string `json:"password" validate:"required,max=256"`
}

// LoginResponse is returned by a successful login. The token is also set as
// the authToken cookie.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStatus is returned by the session check.
type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
	AuthRequired  bool `json:"auth_required"`
}

// Login verifies the application password and issues a session token.
//
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Application password"
// @Success 200 {object} models.APIResponse{data=LoginResponse}
// @Failure 401 {object} models.APIResponse
// @Failure 429 {object} models.APIResponse
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.auth.Enabled() || h.jwt == nil || h.password == nil {
		h.respondSuccess(w, start, SessionStatus{Authenticated: true}, nil, false)
		return
	}

	var req LoginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validateRequest(&req) != nil {
		h.audit.LogLoginAttempt(r.RemoteAddr, r.UserAgent(), false, "malformed request")
		h.respondError(w, r, http.StatusUnauthorized, models.CodeUnauthorized, "Invalid password", nil)
		return
	}

	if !h.password.Verify(req.Password) {
		h.audit.LogLoginAttempt(r.RemoteAddr, r.UserAgent(), false, "invalid password")
		h.respondError(w, r, http.StatusUnauthorized, models.CodeUnauthorized, "Invalid password", nil)
		return
	}

	token, err := h.jwt.GenerateToken()
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, models.CodeInternal, "Failed to create session", err)
		return
	}

	h.auth.SetSessionCookie(w, token, h.jwt.Timeout())
	h.audit.LogLoginAttempt(r.RemoteAddr, r.UserAgent(), true, "")
	h.respondSuccess(w, start, LoginResponse{
		Token:     token,
		ExpiresAt: h.now().Add(h.jwt.Timeout()).UTC(),
	}, nil, false)
}

// Session reports whether the session cookie is valid. Bearer headers are
// not consulted here.
//
// @Summary Session check
// @Tags Auth
// @Produce json
// @Success 200 {object} models.APIResponse{data=SessionStatus}
// @Failure 401 {object} models.APIResponse{data=SessionStatus}
// @Router /login [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.auth.Enabled() {
		h.respondSuccess(w, start, SessionStatus{Authenticated: true}, nil, false)
		return
	}

	if !h.auth.Authenticated(r) {
		resp := models.NewError(models.CodeUnauthorized, "Not authenticated", h.now())
		resp.Data = SessionStatus{AuthRequired: true}
		respondJSON(w, http.StatusUnauthorized, resp)
		return
	}
	h.respondSuccess(w, start, SessionStatus{Authenticated: true, AuthRequired: true}, nil, false)
}

// Logout clears the session cookie.
//
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /login [delete]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.ClearSessionCookie(w)
	h.audit.LogLogout(r.RemoteAddr)
	h.respondSuccess(w, time.Now(), map[string]string{"message": "Logged out"}, nil, false)
}
