// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package services

import (
	"context"
)

// ContextHub is satisfied by *websocket.Hub.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService runs the live feed hub under suture.
type WebSocketHubService struct {
	hub  ContextHub
	name string
}

// NewWebSocketHubService creates a new WebSocket hub service wrapper.
func NewWebSocketHubService(hub ContextHub) *WebSocketHubService {
	return &WebSocketHubService{
		hub:  hub,
		name: "websocket-hub",
	}
}

// Serve implements suture.Service.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

func (w *WebSocketHubService) String() string {
	return w.name
}

// Runner is satisfied by *websocket.Broadcaster.
type Runner interface {
	Run(ctx context.Context) error
}

// BroadcasterService pushes periodic metrics updates to websocket clients.
// It belongs in the same layer as the hub it feeds.
type BroadcasterService struct {
	runner Runner
	name   string
}

// NewBroadcasterService wraps a broadcaster.
func NewBroadcasterService(r Runner) *BroadcasterService {
	return &BroadcasterService{
		runner: r,
		name:   "metrics-broadcaster",
	}
}

// Serve implements suture.Service.
func (b *BroadcasterService) Serve(ctx context.Context) error {
	return b.runner.Run(ctx)
}

func (b *BroadcasterService) String() string {
	return b.name
}
