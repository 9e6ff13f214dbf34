// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points config discovery at an empty temp dir so the developer's
// config.yaml and .env cannot leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Setenv(DotEnvPathEnvVar, filepath.Join(dir, ".env"))
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "pgx" {
		t.Errorf("Database.Driver = %q, want pgx", cfg.Database.Driver)
	}
	if cfg.Database.MaxOpenConns != 10 || cfg.Database.MaxIdleConns != 1 {
		t.Errorf("pool = %d/%d, want 10/1", cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	}
	if cfg.Database.QueryTimeout != 15*time.Second {
		t.Errorf("Database.QueryTimeout = %v, want 15s", cfg.Database.QueryTimeout)
	}
	want := []string{"http://localhost:5173", "http://localhost:3000"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Security.JWTSecret != "" || cfg.Security.AppPassword != "" || cfg.Graph.Password != "" {
		t.Error("secrets must not have defaults")
	}
	if cfg.Security.SessionTimeout != 24*time.Hour {
		t.Errorf("SessionTimeout = %v, want 24h", cfg.Security.SessionTimeout)
	}
}

func TestLoad_MockModeNeedsNoDatabase(t *testing.T) {
	isolate(t)
	t.Setenv("MOCK_MODE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.MockMode {
		t.Error("MockMode = false, want true")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MOCK_MODE", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing DATABASE_URL")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error = %v, want mention of DATABASE_URL", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "postgres://eventdash:pw@db:5432/events")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("QUERY_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "https://dash.example.com, http://localhost:5173")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CACHE_BACKEND", "none")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://eventdash:pw@db:5432/events" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Database.QueryTimeout != 3*time.Second {
		t.Errorf("QueryTimeout = %v, want 3s", cfg.Database.QueryTimeout)
	}
	want := []string{"https://dash.example.com", "http://localhost:5173"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "eventdash.yaml")
	content := `
database:
  driver: duckdb
  path: ""
  seed_demo: true
server:
  port: 7000
live:
  interval: 5s
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Driver != "duckdb" || !cfg.Database.SeedDemo {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000", cfg.Server.Port)
	}
	if cfg.Live.Interval != 5*time.Second {
		t.Errorf("Live.Interval = %v, want 5s", cfg.Live.Interval)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("MOCK_MODE=true\nSERVICE_NAME=Dotenv API\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv exports into the process; unset afterwards.
	t.Cleanup(func() {
		_ = os.Unsetenv("MOCK_MODE")
		_ = os.Unsetenv("SERVICE_NAME")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.MockMode || cfg.Server.ServiceName != "Dotenv API" {
		t.Errorf("dotenv values not applied: mock=%v name=%q", cfg.MockMode, cfg.Server.ServiceName)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid duckdb", func(c *Config) { c.Database.Driver = "duckdb" }, ""},
		{"bad driver", func(c *Config) { c.Database.Driver = "mysql" }, "Driver"},
		{"bad scheme", func(c *Config) { c.Database.URL = "mysql://x" }, "postgres://"},
		{"idle above open", func(c *Config) { c.Database.MaxIdleConns = 20 }, "DB_MAX_IDLE_CONNS"},
		{"auth without secret", func(c *Config) {
			c.Security.AuthEnabled = true
			c.Security.AppPassword = "pw"
		}, "JWT_SECRET"},
		{"auth without password", func(c *Config) {
			c.Security.AuthEnabled = true
			c.Security.JWTSecret = strings.Repeat("s", 32)
		}, "APP_PASSWORD"},
		{"auth with wildcard cors", func(c *Config) {
			c.Security.AuthEnabled = true
			c.Security.JWTSecret = strings.Repeat("s", 32)
			c.Security.AppPassword = "pw"
			c.Security.CORSOrigins = []string{"*"}
		}, "CORS_ORIGINS"},
		{"graph without password", func(c *Config) { c.Graph.Enabled = true }, "NEO4J_PASSWORD"},
		{"graph bad scheme", func(c *Config) {
			c.Graph.Enabled = true
			c.Graph.URI = "http://localhost:7474"
		}, "unsupported scheme"},
		{"redis without address", func(c *Config) {
			c.Cache.Backend = "redis"
			c.Cache.RedisAddress = ""
		}, "REDIS_ADDRESS"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			cfg.Database.URL = "postgres://u:p@localhost:5432/events"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
	if s.IsProduction() {
		t.Error("IsProduction() = true for empty environment")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	if got := envTransformFunc("NEO4J_URI"); got != "graph.uri" {
		t.Errorf("NEO4J_URI -> %q", got)
	}
	if got := envTransformFunc("HOME"); got != "" {
		t.Errorf("HOME -> %q, want skipped", got)
	}
}
