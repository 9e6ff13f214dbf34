// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tomtom215/eventdash/internal/config"
)

const (
	// DefaultNeo4jImage is the community edition used by the graph tests.
	DefaultNeo4jImage = "neo4j:5-community"

	neo4jBoltPort = "7687/tcp"
	neo4jPassword = "eventdash-test"
)

// Neo4jContainer is a throwaway Neo4j server.
type Neo4jContainer struct {
	testcontainers.Container
	URI string
}

// NewNeo4jContainer starts Neo4j and waits for the bolt listener.
func NewNeo4jContainer(ctx context.Context) (*Neo4jContainer, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        DefaultNeo4jImage,
			ExposedPorts: []string{neo4jBoltPort},
			Env: map[string]string{
				"NEO4J_AUTH": "neo4j/" + neo4jPassword,
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("Started."),
				wait.ForListeningPort(neo4jBoltPort),
			).WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create neo4j container: %w", err)
	}

	addr, err := endpoint(ctx, container, neo4jBoltPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, err
	}
	return &Neo4jContainer{Container: container, URI: "neo4j://" + addr}, nil
}

// GraphConfig returns settings for graph.Open.
func (c *Neo4jContainer) GraphConfig() config.GraphConfig {
	return config.GraphConfig{
		Enabled:  true,
		URI:      c.URI,
		Username: "neo4j",
		Password: neo4jPassword,
		Database: "neo4j",
	}
}
