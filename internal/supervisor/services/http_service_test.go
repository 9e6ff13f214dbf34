// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// stubServer blocks in ListenAndServe until Shutdown, unless listenErr is set.
type stubServer struct {
	listenErr   error
	shutdownErr error

	started  chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

func newStubServer() *stubServer {
	return &stubServer{started: make(chan struct{}, 1), stopped: make(chan struct{})}
}

func (s *stubServer) ListenAndServe() error {
	select {
	case s.started <- struct{}{}:
	default:
	}
	if s.listenErr != nil {
		return s.listenErr
	}
	<-s.stopped
	return http.ErrServerClosed
}

func (s *stubServer) Shutdown(context.Context) error {
	s.stopOnce.Do(func() { close(s.stopped) })
	return s.shutdownErr
}

func TestNewHTTPServerService_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timeout time.Duration
		want    time.Duration
	}{
		{3 * time.Second, 3 * time.Second},
		{0, DefaultShutdownTimeout},
		{-time.Second, DefaultShutdownTimeout},
	}
	for _, tt := range tests {
		svc := NewHTTPServerService(newStubServer(), "127.0.0.1:0", tt.timeout)
		if svc.shutdownTimeout != tt.want {
			t.Errorf("timeout %v: got %v, want %v", tt.timeout, svc.shutdownTimeout, tt.want)
		}
		if svc.String() != "http-server" {
			t.Errorf("String() = %q", svc.String())
		}
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	t.Parallel()

	bindErr := errors.New("bind: address already in use")
	drainErr := errors.New("context deadline exceeded while draining")

	tests := []struct {
		name     string
		server   *stubServer
		cancel   bool
		wantErr  error
		wantStop bool
	}{
		{"cancel shuts down", newStubServer(), true, context.Canceled, true},
		{"startup failure is returned", &stubServer{listenErr: bindErr, started: make(chan struct{}, 1), stopped: make(chan struct{})}, false, bindErr, false},
		{"shutdown failure is returned", &stubServer{shutdownErr: drainErr, started: make(chan struct{}, 1), stopped: make(chan struct{})}, true, drainErr, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewHTTPServerService(tt.server, "127.0.0.1:0", time.Second)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan error, 1)
			go func() { done <- svc.Serve(ctx) }()

			select {
			case <-tt.server.started:
			case <-time.After(time.Second):
				t.Fatal("ListenAndServe not called")
			}
			if tt.cancel {
				cancel()
			}

			select {
			case err := <-done:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Serve = %v, want %v", err, tt.wantErr)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Serve did not return")
			}

			select {
			case <-tt.server.stopped:
				if !tt.wantStop {
					t.Error("Shutdown called unexpectedly")
				}
			default:
				if tt.wantStop {
					t.Error("Shutdown not called")
				}
			}
		})
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	t.Parallel()

	server := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	sup := suture.New("test-sup", suture.Spec{Timeout: 2 * time.Second})
	sup.Add(NewHTTPServerService(server, server.Addr, time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	select {
	case err := <-sup.ServeBackground(ctx):
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("supervisor = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}
