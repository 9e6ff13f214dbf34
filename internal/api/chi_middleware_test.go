// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/eventdash/internal/config"
)

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sec         *config.SecurityConfig
		wantOrigins int
		wantReqs    int
		wantWindow  time.Duration
		wantOff     bool
	}{
		{"nil keeps defaults", nil, 2, 100, time.Minute, false},
		{"empty keeps defaults", &config.SecurityConfig{}, 2, 100, time.Minute, false},
		{
			"overrides",
			&config.SecurityConfig{
				CORSOrigins:       []string{"https://dash.example.com"},
				RateLimitReqs:     20,
				RateLimitWindow:   10 * time.Second,
				RateLimitDisabled: true,
			},
			1, 20, 10 * time.Second, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := ChiMiddlewareConfigFromSecurity(tt.sec)
			if len(cfg.CORSAllowedOrigins) != tt.wantOrigins {
				t.Errorf("origins = %v", cfg.CORSAllowedOrigins)
			}
			if cfg.RateLimitRequests != tt.wantReqs || cfg.RateLimitWindow != tt.wantWindow {
				t.Errorf("rate limit = %d/%v", cfg.RateLimitRequests, cfg.RateLimitWindow)
			}
			if cfg.RateLimitDisabled != tt.wantOff {
				t.Errorf("disabled = %v", cfg.RateLimitDisabled)
			}
			if !cfg.CORSAllowCredentials {
				t.Error("credentials must be allowed for cookie sessions")
			}
		})
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		origin    string
		wantAllow string
	}{
		{"http://localhost:5173", "http://localhost:5173"},
		{"http://localhost:3000", "http://localhost:3000"},
		{"https://evil.example.com", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodOptions, "/api/events", nil)
		req.Header.Set("Origin", tt.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
			t.Errorf("origin %s: allow = %q, want %q", tt.origin, got, tt.wantAllow)
		}
		if tt.wantAllow != "" && rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Errorf("origin %s: credentials not allowed", tt.origin)
		}
	}
}

func TestRateLimitDisabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true})
	handler := m.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Hour})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS missing behind TLS proxy")
	}
}
