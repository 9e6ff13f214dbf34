// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package websocket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

// startHub runs a hub until the test ends.
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

func testClient(hub *Hub, buffer int) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message, buffer)}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", msg)
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed")
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
	return Message{}
}

func TestHub_RegisterUnregister(t *testing.T) {
	t.Parallel()
	hub := startHub(t)

	a, b := testClient(hub, 4), testClient(hub, 4)
	hub.Register <- a
	hub.Register <- b
	waitFor(t, func() bool { return hub.GetClientCount() == 2 }, "two clients")

	hub.Unregister <- a
	waitFor(t, func() bool { return hub.GetClientCount() == 1 }, "one client")
	if _, ok := <-a.send; ok {
		t.Error("unregistered client's send channel should be closed")
	}

	// Unregistering twice must not close the channel again.
	hub.Unregister <- a
	waitFor(t, func() bool { return hub.GetClientCount() == 1 }, "still one client")
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	t.Parallel()
	hub := startHub(t)

	clients := []*Client{testClient(hub, 4), testClient(hub, 4), testClient(hub, 4)}
	for _, c := range clients {
		hub.Register <- c
	}
	waitFor(t, func() bool { return hub.GetClientCount() == 3 }, "clients")

	hub.BroadcastJSON(MessageTypeMetricsUpdate, map[string]int{"totalEvents": 7})
	for i, c := range clients {
		msg := receive(t, c)
		if msg.Type != MessageTypeMetricsUpdate {
			t.Errorf("client %d got type %q", i, msg.Type)
		}
	}
}

func TestHub_DropsSlowClients(t *testing.T) {
	t.Parallel()
	hub := startHub(t)

	slow := testClient(hub, 1)
	fast := testClient(hub, 8)
	hub.Register <- slow
	hub.Register <- fast
	waitFor(t, func() bool { return hub.GetClientCount() == 2 }, "clients")

	hub.BroadcastJSON("first", nil)
	hub.BroadcastJSON("second", nil)
	waitFor(t, func() bool { return hub.GetClientCount() == 1 }, "slow client dropped")

	if receive(t, fast).Type != "first" || receive(t, fast).Type != "second" {
		t.Error("fast client should receive both messages in order")
	}
	if msg := receive(t, slow); msg.Type != "first" {
		t.Errorf("slow client first message = %q", msg.Type)
	}
	if _, ok := <-slow.send; ok {
		t.Error("slow client's channel should be closed")
	}
}

func TestHub_BroadcastChannelFull(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	for i := 0; i < cap(hub.broadcast)+10; i++ {
		hub.BroadcastJSON("flood", i)
	}
	if got := len(hub.broadcast); got != cap(hub.broadcast) {
		t.Errorf("queued = %d, want %d", got, cap(hub.broadcast))
	}
}

func TestHub_RunWithContext_ClosesClients(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()

	c := testClient(hub, 1)
	hub.Register <- c
	waitFor(t, func() bool { return hub.GetClientCount() == 1 }, "client")

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	if hub.GetClientCount() != 0 {
		t.Error("clients should be closed on shutdown")
	}
	if _, ok := <-c.send; ok {
		t.Error("client channel should be closed on shutdown")
	}
}

func TestGetShutdownReason(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled reason = %q", got)
	}

	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline reason = %q", got)
	}
}

func TestMarshalMessage(t *testing.T) {
	t.Parallel()

	data, err := MarshalMessage(Message{Type: MessageTypePong})
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["type"] != "pong" {
		t.Errorf("type = %v", got["type"])
	}
	if _, ok := got["data"]; !ok {
		t.Error("data key should always be present")
	}
}
