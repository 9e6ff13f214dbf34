// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/eventdash/internal/logging"
	"github.com/tomtom215/eventdash/internal/metrics"
)

// GetOrLoad returns the cached value for key, or calls load and stores its
// result. cached reports whether the value came from b.
//
// Backend failures never fail the request: a failed read falls through to
// load and a failed write is logged. Errors from load are returned as-is and
// nothing is stored.
func GetOrLoad[T any](ctx context.Context, b Backend, key string, ttl time.Duration, load func(context.Context) (T, error)) (value T, cached bool, err error) {
	raw, ok, gerr := b.Get(ctx, key)
	switch {
	case gerr != nil:
		logging.Ctx(ctx).Warn().Err(gerr).Str("backend", b.Name()).Str("key", key).Msg("Cache read failed")
	case ok:
		if uerr := json.Unmarshal(raw, &value); uerr == nil {
			metrics.RecordCacheLookup(b.Name(), true)
			return value, true, nil
		}
		logging.Ctx(ctx).Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	}
	metrics.RecordCacheLookup(b.Name(), false)

	value, err = load(ctx)
	if err != nil {
		return value, false, err
	}

	data, merr := json.Marshal(value)
	if merr != nil {
		return value, false, nil
	}
	if serr := b.Set(ctx, key, data, ttl); serr != nil {
		logging.Ctx(ctx).Warn().Err(serr).Str("backend", b.Name()).Str("key", key).Msg("Cache write failed")
	}
	return value, false, nil
}

// GenerateKey creates a compact cache key from a method name and its parameters.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
