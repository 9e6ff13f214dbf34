// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package cache stores encoded API responses for the catalog endpoints.

Three backends implement Backend:

  - Memory: in-process map with TTL expiration and a background sweep
  - Redis: shared store for multiple API replicas (go-redis)
  - Noop: caching disabled

Values are stored as JSON so the same entries can be shared through Redis.
GetOrLoad wraps a loader with read-through caching and records hits and misses
in Prometheus. A failing backend degrades to calling the loader.

# Usage Example

	b, err := cache.New(ctx, &cfg.Cache)
	if err != nil {
	    return err
	}
	defer b.Close()

	cameras, cached, err := cache.GetOrLoad(ctx, b, "catalog:cameras", 0, svc.Cameras)
*/
package cache
