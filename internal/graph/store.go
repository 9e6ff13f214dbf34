// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	appconfig "github.com/tomtom215/eventdash/internal/config"
	"github.com/tomtom215/eventdash/internal/logging"
)

// Runner executes read-only Cypher and returns every record.
type Runner interface {
	Run(ctx context.Context, cypher string, params map[string]interface{}) ([]*neo4j.Record, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Neo4jStore is a Runner backed by the Neo4j driver.
type Neo4jStore struct {
	driver   neo4j.DriverWithContext
	database string
}

// Open connects to Neo4j and verifies connectivity. A server that cannot be
// reached yields an error wrapping ErrUnavailable.
func Open(ctx context.Context, cfg *appconfig.GraphConfig) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(c *neo4j.Config) {
			c.MaxConnectionPoolSize = 10
			c.ConnectionAcquisitionTimeout = 10 * time.Second
		})
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	logging.Info().Str("uri", cfg.URI).Str("database", cfg.Database).Msg("Connected to Neo4j")
	return &Neo4jStore{driver: driver, database: cfg.Database}, nil
}

// Run executes cypher with reader routing against the configured database.
func (s *Neo4jStore) Run(ctx context.Context, cypher string, params map[string]interface{}) ([]*neo4j.Record, error) {
	res, err := neo4j.ExecuteQuery(ctx, s.driver, cypher, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.database),
		neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Ping verifies the driver can still reach the server.
func (s *Neo4jStore) Ping(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

// Close releases the driver's connections.
func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// NullGraph returns no records for every query.
type NullGraph struct{}

func (NullGraph) Run(context.Context, string, map[string]interface{}) ([]*neo4j.Record, error) {
	return nil, nil
}

func (NullGraph) Ping(context.Context) error  { return nil }
func (NullGraph) Close(context.Context) error { return nil }

// IsDisabled reports whether r is a NullGraph.
func IsDisabled(r Runner) bool {
	switch r.(type) {
	case NullGraph, *NullGraph:
		return true
	}
	return false
}
