// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package supervisor runs the long-lived parts of EventDash under a suture v4
supervisor tree.

The tree has three layers, each with its own failure counter:

	eventdash
	├── data-layer
	│   ├── store-monitor   (pings the relational store)
	│   └── graph-monitor   (pings the graph database, when configured)
	├── messaging-layer
	│   ├── websocket-hub
	│   └── metrics-broadcaster
	└── api-layer
	    └── http-server

Monitors never fail; they log reachability changes and flip the degraded
gauge. A crashing broadcaster is restarted inside the messaging layer while
the HTTP server keeps serving.

Usage from cmd/server:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewMonitorService("store", store, 0, onStoreChange))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

A service returning nil is not restarted; any other error restarts it after
suture's backoff. Services must return promptly once ctx is done, otherwise
they show up in UnstoppedServiceReport.

The relational store and the graph driver are libraries, not services, and
are not supervised; their reachability is what the data layer watches.
*/
package supervisor
