// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

// Package testinfra starts PostgreSQL and Neo4j containers for integration
// tests with testcontainers-go.
//
// Everything here sits behind the integration build tag:
//
//	go test -tags integration ./internal/testinfra/...
//
// Tests skip themselves when Docker is not available or -short is set.
//
//	pg, err := testinfra.NewPostgresContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, pg.Container)
//
//	store, err := pg.OpenStore(ctx) // migrations applied
package testinfra
