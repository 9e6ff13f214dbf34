// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file, a .env file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. .env File: Variables from .env are exported into the process environment
//     (existing environment variables win)
//  4. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	store, err := database.Open(ctx, &cfg.Database)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Graph    GraphConfig    `koanf:"graph"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Live     LiveConfig     `koanf:"live"`

	// MockMode serves every view from empty stores without connecting to
	// Postgres or Neo4j.
	MockMode bool `koanf:"mock_mode"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
	ServiceName     string        `koanf:"service_name" validate:"required"`
}

// DatabaseConfig holds relational store settings.
type DatabaseConfig struct {
	// Driver selects the store: "pgx" (PostgreSQL) or "duckdb" (embedded).
	Driver string `koanf:"driver" validate:"oneof=pgx duckdb"`
	// URL is the PostgreSQL connection string (pgx driver).
	URL string `koanf:"url"`
	// Path is the DuckDB database file; empty opens an in-memory database.
	Path            string        `koanf:"path"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=1,lte=100"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	QueryTimeout    time.Duration `koanf:"query_timeout" validate:"gt=0"`
	// AutoMigrate applies pending schema migrations at startup.
	AutoMigrate bool `koanf:"auto_migrate"`
	// SeedDemo inserts a demo dataset into an empty DuckDB store.
	SeedDemo bool `koanf:"seed_demo"`
	// FailOpen serves empty results when the store cannot be opened at startup.
	FailOpen bool `koanf:"fail_open"`
}

// GraphConfig holds Neo4j settings for the relationship views.
type GraphConfig struct {
	Enabled  bool   `koanf:"enabled"`
	URI      string `koanf:"uri"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Database string `koanf:"database"`
}

// CacheConfig holds catalog response cache settings.
type CacheConfig struct {
	Backend       string        `koanf:"backend" validate:"oneof=memory redis none"`
	TTL           time.Duration `koanf:"ttl" validate:"gt=0"`
	RedisAddress  string        `koanf:"redis_address"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db" validate:"gte=0"`
}

// SecurityConfig holds authentication, CORS and rate limiting settings
type SecurityConfig struct {
	AuthEnabled       bool          `koanf:"auth_enabled"`
	JWTSecret         string        `koanf:"jwt_secret"`
	AppPassword       string        `koanf:"app_password"`
	SessionTimeout    time.Duration `koanf:"session_timeout" validate:"gt=0"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`
	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// LiveConfig holds live metrics feed settings.
type LiveConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval" validate:"gte=1s"`
}

// Load reads .env (if present) and then layered configuration.
func Load() (*Config, error) {
	if err := loadDotEnv(dotEnvPath()); err != nil {
		return nil, err
	}
	return LoadWithKoanf()
}

// loadDotEnv exports variables from path without overriding the environment.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
