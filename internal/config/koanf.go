// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/eventdash/config.yaml",
	"/etc/eventdash/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the location of the .env file.
const DotEnvPathEnvVar = "DOTENV_PATH"

// defaultConfig returns a Config struct with all default values.
// Secrets have no defaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
			ServiceName:     "EventDash API",
		},
		Database: DatabaseConfig{
			Driver:          "pgx",
			MaxOpenConns:    10,
			MaxIdleConns:    1,
			ConnMaxLifetime: 30 * time.Minute,
			QueryTimeout:    15 * time.Second,
			AutoMigrate:     false,
			SeedDemo:        false,
			FailOpen:        true,
		},
		Graph: GraphConfig{
			Enabled:  false,
			URI:      "neo4j://localhost:7687",
			Username: "neo4j",
			Database: "neo4j",
		},
		Cache: CacheConfig{
			Backend:      "memory",
			TTL:          time.Minute,
			RedisAddress: "localhost:6379",
		},
		Security: SecurityConfig{
			AuthEnabled:     false,
			SessionTimeout:  24 * time.Hour,
			CORSOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
			RateLimitReqs:   300,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Live: LiveConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
// defaults, then the config file, then environment variables. The result is
// validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func dotEnvPath() string {
	if p := os.Getenv(DotEnvPathEnvVar); p != "" {
		return p
	}
	return ".env"
}

// sliceConfigPaths are keys whose env values are comma-separated lists.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to config keys.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"http_port":        "server.port",
	"port":             "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",
	"service_name":     "server.service_name",

	"database_driver":      "database.driver",
	"database_url":         "database.url",
	"postgres_url":         "database.url",
	"duckdb_path":          "database.path",
	"db_max_open_conns":    "database.max_open_conns",
	"db_max_idle_conns":    "database.max_idle_conns",
	"db_conn_max_lifetime": "database.conn_max_lifetime",
	"query_timeout":        "database.query_timeout",
	"auto_migrate":         "database.auto_migrate",
	"seed_demo_data":       "database.seed_demo",
	"database_fail_open":   "database.fail_open",

	"graph_enabled":  "graph.enabled",
	"neo4j_uri":      "graph.uri",
	"neo4j_username": "graph.username",
	"neo4j_password": "graph.password",
	"neo4j_database": "graph.database",

	"cache_backend":  "cache.backend",
	"cache_ttl":      "cache.ttl",
	"redis_address":  "cache.redis_address",
	"redis_password": "cache.redis_password",
	"redis_db":       "cache.redis_db",

	"auth_enabled":        "security.auth_enabled",
	"jwt_secret":          "security.jwt_secret",
	"app_password":        "security.app_password",
	"session_timeout":     "security.session_timeout",
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"live_enabled":  "live.enabled",
	"live_interval": "live.interval",

	"mock_mode": "mock_mode",
}

// envTransformFunc maps environment variable names onto config keys.
// Returning "" tells koanf to skip the variable.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
