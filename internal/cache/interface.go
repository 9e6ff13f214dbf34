// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/eventdash/internal/config"
)

// Backend names as accepted by cache.backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// DefaultTTL applies when no TTL is configured.
const DefaultTTL = time.Minute

// Backend stores encoded responses by key. Implementations are safe for
// concurrent use. A miss is reported with ok=false and a nil error.
//
// Usage:
//
//	b, err := cache.New(ctx, &cfg.Cache)
//	types, cached, err := cache.GetOrLoad(ctx, b, "catalog:event_types", 0, svc.EventTypes)
type Backend interface {
	Name() string
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New creates the backend selected by cfg. The redis backend is pinged before
// it is returned.
func New(ctx context.Context, cfg *config.CacheConfig) (Backend, error) {
	switch cfg.Backend {
	case BackendRedis:
		return NewRedis(ctx, RedisOptions{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
	case BackendNone:
		return Noop{}, nil
	case BackendMemory, "":
		return NewMemory(cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Noop never stores anything; every Get is a miss.
type Noop struct{}

func (Noop) Name() string { return BackendNone }

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Delete(context.Context, string) error { return nil }

func (Noop) Close() error { return nil }

var (
	_ Backend = (*Memory)(nil)
	_ Backend = (*Redis)(nil)
	_ Backend = Noop{}
)
