// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package services adapts EventDash components to suture.Service.

Services:

  - HTTPServerService: API server with graceful shutdown
  - WebSocketHubService: live feed client registry and fan-out
  - BroadcasterService: periodic metrics_update pushes
  - MonitorService: reachability checks for the relational and graph stores

Every service returns ctx.Err() on cancellation so suture treats the stop as
clean, and implements fmt.Stringer so suture's event hook can name it.
*/
package services
