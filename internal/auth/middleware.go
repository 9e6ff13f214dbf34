// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/eventdash/internal/logging"
	"github.com/tomtom215/eventdash/internal/models"
)

// CookieName is the session cookie set by a successful login.
const CookieName = "authToken"

type contextKey string

// ClaimsContextKey is the context key for validated claims.
const ClaimsContextKey contextKey = "claims"

var errMissingToken = errors.New("missing token")

// Middleware enforces authentication on protected routes.
type Middleware struct {
	jwt     *JWTManager
	audit   *logging.AuditLogger
	enabled bool
	secure  bool
}

// NewMiddleware creates the auth middleware. With enabled false every request
// passes through unchanged. secure marks session cookies Secure.
func NewMiddleware(jwtManager *JWTManager, enabled, secure bool) *Middleware {
	return &Middleware{
		jwt:     jwtManager,
		audit:   logging.NewAuditLogger(),
		enabled: enabled && jwtManager != nil,
		secure:  secure,
	}
}

// Enabled reports whether authentication is enforced.
func (m *Middleware) Enabled() bool {
	return m.enabled
}

// RequireAuth rejects requests without a valid token in the authToken cookie
// or an Authorization: Bearer header.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		token, err := TokenFromRequest(r)
		if err != nil {
			writeUnauthorized(w, "Authentication required")
			return
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			m.audit.LogTokenRejected(r.RemoteAddr, r.URL.Path, token, err)
			writeUnauthorized(w, "Invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticated reports whether the authToken cookie holds a valid token.
// Session checks only consult the cookie.
func (m *Middleware) Authenticated(r *http.Request) bool {
	if m.jwt == nil {
		return false
	}
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return false
	}
	_, err = m.jwt.ValidateToken(c.Value)
	return err == nil
}

// SetSessionCookie writes the session cookie for token.
func (m *Middleware) SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie.
func (m *Middleware) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// TokenFromRequest returns the token from the authToken cookie, falling back
// to an Authorization: Bearer header.
func TokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}

// ClaimsFromContext returns the claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	body, err := json.Marshal(models.NewError(models.CodeUnauthorized, message, time.Now()))
	if err != nil {
		http.Error(w, message, http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write(body)
}
