// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSanitizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"short", "***"},
		{"eyJhbGciOiJIUzI1NiJ9.e30.abcd", "eyJh...abcd"},
	}
	for _, tt := range tests {
		if got := SanitizeToken(tt.in); got != tt.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	if got := SanitizeError("invalid Password supplied"); got != "authentication error" {
		t.Errorf("got %q", got)
	}
	if got := SanitizeError("signature expired"); got != "signature expired" {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("x", 300)
	if got := SanitizeError(long); len(got) != 203 {
		t.Errorf("len = %d, want 203", len(got))
	}
}

func TestAuditLoggerLoginFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := NewAuditLoggerWithLogger(NewTestLogger(&buf))
	a.LogLoginAttempt("10.0.0.1", "curl/8", false, "password mismatch")

	m := decodeLine(t, &buf)
	if m["event"] != string(AuthLoginFailure) {
		t.Errorf("event = %v", m["event"])
	}
	if m["component"] != "auth" {
		t.Errorf("component = %v", m["component"])
	}
	if m["reason"] != "authentication error" {
		t.Errorf("reason leaked: %v", m["reason"])
	}
	if m["success"] != false {
		t.Errorf("success = %v", m["success"])
	}
}

func TestAuditLoggerLoginSuccess(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := NewAuditLoggerWithLogger(NewTestLogger(&buf))
	a.LogLoginAttempt("10.0.0.1", "browser", true, "")

	m := decodeLine(t, &buf)
	if m["event"] != string(AuthLoginSuccess) || m["level"] != "info" {
		t.Errorf("unexpected entry %v", m)
	}
	if _, ok := m["reason"]; ok {
		t.Error("reason should be omitted on success")
	}
}
