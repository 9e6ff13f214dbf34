// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package auth provides password login and JWT session handling for the
dashboard.

The dashboard is protected by one shared application password. A successful
login issues an HS256 token carrying {"authenticated": true} that expires
after security.session_timeout (24h by default). The token is returned in the
response body and set as the authToken cookie (HttpOnly, SameSite=Strict,
Secure in production).

RequireAuth accepts the token from the cookie or an Authorization: Bearer
header. When security.auth_enabled is false it lets every request through.

The password is held only as a bcrypt hash. APP_PASSWORD may itself be a
bcrypt hash, in which case it is used as-is.

Usage:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	verifier, err := auth.NewPasswordVerifier(cfg.Security.AppPassword)
	mw := auth.NewMiddleware(jwtManager, cfg.Security.AuthEnabled, cfg.Server.IsProduction())

	r.With(mw.RequireAuth).Get("/api/dashboard/analytics", h.Analytics)
*/
package auth
