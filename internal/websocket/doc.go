// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

/*
Package websocket provides the live metrics feed.

Key Components:

  - Hub: tracks connected clients and fans out broadcasts
  - Client: one connection with its read and write pumps
  - Broadcaster: computes the 24h metrics summary every live.interval while
    at least one client is connected and broadcasts it as metrics_update
  - Handler: upgrades GET /api/ws, checking Origin against the CORS list

Messages are JSON objects of the form {"type": ..., "data": ...}. Clients may
send {"type":"ping"} and receive {"type":"pong"}.

A client whose send buffer is full when a broadcast arrives is disconnected
rather than slowing the hub.

Both Hub.RunWithContext and Broadcaster.Run block until their context is
canceled and are run as supervised services.
*/
package websocket
