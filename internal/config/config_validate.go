// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/eventdash/internal/validation"
)

// minJWTSecretLength is the shortest accepted HS256 signing secret.
const minJWTSecretLength = 32

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateGraph(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	return c.validateSecurity()
}

// validateDatabase requires a connection URL for PostgreSQL unless the
// process runs in mock mode.
func (c *Config) validateDatabase() error {
	if c.MockMode || c.Database.Driver != "pgx" {
		return nil
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when DATABASE_DRIVER=pgx (or set MOCK_MODE=true)")
	}
	u, err := url.Parse(c.Database.URL)
	if err != nil {
		return fmt.Errorf("DATABASE_URL is invalid: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("DATABASE_URL must use the postgres:// or postgresql:// scheme")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS (%d) cannot exceed DB_MAX_OPEN_CONNS (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	return nil
}

func (c *Config) validateGraph() error {
	if !c.Graph.Enabled || c.MockMode {
		return nil
	}
	u, err := url.Parse(c.Graph.URI)
	if err != nil || u.Host == "" {
		return fmt.Errorf("NEO4J_URI is invalid: %q", c.Graph.URI)
	}
	switch u.Scheme {
	case "neo4j", "neo4j+s", "neo4j+ssc", "bolt", "bolt+s", "bolt+ssc":
	default:
		return fmt.Errorf("NEO4J_URI has unsupported scheme %q", u.Scheme)
	}
	if c.Graph.Username == "" || c.Graph.Password == "" {
		return fmt.Errorf("NEO4J_USERNAME and NEO4J_PASSWORD are required when GRAPH_ENABLED=true")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Backend == "redis" && c.Cache.RedisAddress == "" {
		return fmt.Errorf("REDIS_ADDRESS is required when CACHE_BACKEND=redis")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" && c.Security.AuthEnabled {
			return fmt.Errorf("CORS_ORIGINS cannot contain '*' when authentication cookies are enabled")
		}
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}

	if !c.Security.AuthEnabled {
		return nil
	}
	if len(c.Security.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters when AUTH_ENABLED=true", minJWTSecretLength)
	}
	if c.Security.AppPassword == "" {
		return fmt.Errorf("APP_PASSWORD is required when AUTH_ENABLED=true")
	}
	return nil
}
