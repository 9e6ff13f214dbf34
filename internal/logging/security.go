// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// AuthEvent names an audited authentication action.
type AuthEvent string

const (
	AuthLoginSuccess  AuthEvent = "login_success"
	AuthLoginFailure  AuthEvent = "login_failure"
	AuthLogout        AuthEvent = "logout"
	AuthTokenRejected AuthEvent = "token_rejected"
)

// AuditLogger writes authentication events with secrets masked.
// Passwords are never logged, only whether one was supplied.
type AuditLogger struct {
	logger zerolog.Logger
}

// NewAuditLogger tags entries with component=auth.
func NewAuditLogger() *AuditLogger {
	return &AuditLogger{logger: With().Str("component", "auth").Logger()}
}

// NewAuditLoggerWithLogger is used by tests to capture output.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAuditLoggerWithLogger(logger zerolog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger.With().Str("component", "auth").Logger()}
}

// LogLoginAttempt records a password login. reason is only logged on failure.
func (a *AuditLogger) LogLoginAttempt(ip, userAgent string, success bool, reason string) {
	event := AuthLoginSuccess
	e := a.logger.Info()
	if !success {
		event = AuthLoginFailure
		e = a.logger.Warn().Str("reason", SanitizeError(reason))
	}
	e.Str("event", string(event)).
		Str("ip", ip).
		Str("user_agent", truncateString(userAgent, 120)).
		Bool("success", success).
		Msg("login attempt")
}

// LogLogout records a cookie clear.
func (a *AuditLogger) LogLogout(ip string) {
	a.logger.Info().Str("event", string(AuthLogout)).Str("ip", ip).Msg("logout")
}

// LogTokenRejected records a request carrying an invalid or expired token.
func (a *AuditLogger) LogTokenRejected(ip, path, token string, err error) {
	reason := ""
	if err != nil {
		reason = SanitizeError(err.Error())
	}
	a.logger.Debug().
		Str("event", string(AuthTokenRejected)).
		Str("ip", ip).
		Str("path", path).
		Str("token", SanitizeToken(token)).
		Str("reason", reason).
		Msg("token rejected")
}

// SanitizeToken keeps the first and last 4 characters of a token.
// Example: "eyJhbGciOiJIUzI1NiJ9.e30.abcd" -> "eyJh...abcd"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

var sensitiveWords = []string{"password", "secret", "token", "key", "bearer", "authorization", "cookie"}

// SanitizeError replaces messages that mention credentials with a generic
// one and truncates the rest to 200 bytes.
func SanitizeError(msg string) string {
	lower := strings.ToLower(msg)
	for _, w := range sensitiveWords {
		if strings.Contains(lower, w) {
			return "authentication error"
		}
	}
	return truncateString(msg, 200)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
