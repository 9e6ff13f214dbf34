// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/eventdash/internal/analytics"
	"github.com/tomtom215/eventdash/internal/auth"
	"github.com/tomtom215/eventdash/internal/config"
	"github.com/tomtom215/eventdash/internal/graph"
	"github.com/tomtom215/eventdash/internal/models"
	"github.com/tomtom215/eventdash/internal/timerange"
)

const (
	testSecret   = "test-secret-with-enough-entropy-0123456789"
	testPassword = "correct horse battery staple"
)

// fakeViews records the last arguments and returns canned results.
type fakeViews struct {
	mu       sync.Mutex
	err      error
	degraded bool
	pingErr  error
	// pingHangs makes Ping block until its context ends.
	pingHangs bool
	calls     map[string]int

	lastToken     string
	lastEventType string
	lastCameraID  string
	lastVariant   analytics.GeoVariant
	lastLimit     int
	lastEvents    analytics.EventQuery
	lastSnapshots analytics.SnapshotQuery
	lastRange     timerange.Request
	lastID        string
}

func newFakeViews() *fakeViews {
	return &fakeViews{calls: make(map[string]int)}
}

func (f *fakeViews) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.err
}

func (f *fakeViews) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeViews) MetricsSummary(_ context.Context, token string) (*models.MetricsSummary, error) {
	f.lastToken = token
	if err := f.record("MetricsSummary"); err != nil {
		return nil, err
	}
	return &models.MetricsSummary{
		TimeRange:       string(timerange.Resolve(token, time.Now(), timerange.Default24h).Token),
		EventTypes:      []models.TopicCount{},
		GeoDistribution: []models.LocationCount{},
		CameraActivity:  []models.CameraActivity{},
	}, nil
}

func (f *fakeViews) Timeline(_ context.Context, token, eventType, cameraID string) (*models.Timeline, error) {
	f.lastToken, f.lastEventType, f.lastCameraID = token, eventType, cameraID
	if err := f.record("Timeline"); err != nil {
		return nil, err
	}
	return &models.Timeline{TimeRange: "24h", Interval: "1 hour", BucketMS: 3600000, Data: []models.TimelinePoint{}}, nil
}

func (f *fakeViews) GeoEvents(_ context.Context, v analytics.GeoVariant, token, eventType string, limit int) (*models.GeoEvents, error) {
	f.lastVariant, f.lastToken, f.lastEventType, f.lastLimit = v, token, eventType, limit
	if err := f.record("GeoEvents"); err != nil {
		return nil, err
	}
	return &models.GeoEvents{TimeRange: "24h", EventType: eventType, Events: []models.EventSummary{}, Limit: v.ClampLimit(limit)}, nil
}

func (f *fakeViews) Events(_ context.Context, q analytics.EventQuery) (*models.EventPage, models.EventFilters, error) {
	f.lastEvents = q
	if err := f.record("Events"); err != nil {
		return nil, models.EventFilters{}, err
	}
	return &models.EventPage{Events: []models.EventSummary{}, Pagination: models.Pagination{Page: q.Page, Limit: 50}},
		models.EventFilters{TimeRange: "7d", Search: q.Search, Page: q.Page, Limit: 50}, nil
}

func (f *fakeViews) Snapshots(_ context.Context, q analytics.SnapshotQuery) (*models.SnapshotPage, models.SnapshotFilters, error) {
	f.lastSnapshots = q
	if err := f.record("Snapshots"); err != nil {
		return nil, models.SnapshotFilters{}, err
	}
	return &models.SnapshotPage{Snapshots: []models.SnapshotListItem{}},
		models.SnapshotFilters{TimeRange: "7d", EventID: q.EventID, Type: q.Type, Page: 1, Limit: 50}, nil
}

func (f *fakeViews) EventDetail(_ context.Context, id string) (*models.EventDetail, error) {
	f.lastID = id
	if err := f.record("EventDetail"); err != nil {
		return nil, err
	}
	return &models.EventDetail{Event: models.Event{ID: id}, Snapshots: []models.Snapshot{}}, nil
}

func (f *fakeViews) SnapshotDetail(_ context.Context, id string) (*models.SnapshotDetail, error) {
	f.lastID = id
	if err := f.record("SnapshotDetail"); err != nil {
		return nil, err
	}
	d := &models.SnapshotDetail{}
	d.ID = id
	return d, nil
}

func (f *fakeViews) EventTypes(context.Context) ([]models.TopicCount, error) {
	if err := f.record("EventTypes"); err != nil {
		return nil, err
	}
	return []models.TopicCount{{Topic: "motion", Count: 3}}, nil
}

func (f *fakeViews) Cameras(context.Context) ([]models.CameraSummary, error) {
	if err := f.record("Cameras"); err != nil {
		return nil, err
	}
	return []models.CameraSummary{{ChannelID: "cam-1", EventCount: 3}}, nil
}

func (f *fakeViews) SnapshotTypes(context.Context) ([]models.TypeCount, error) {
	if err := f.record("SnapshotTypes"); err != nil {
		return nil, err
	}
	return []models.TypeCount{{Type: "face", Count: 2}}, nil
}

func (f *fakeViews) Analytics(_ context.Context, q timerange.Request) (*models.AnalyticsBreakdown, error) {
	f.lastRange = q
	if err := f.record("Analytics"); err != nil {
		return nil, err
	}
	return &models.AnalyticsBreakdown{TimeRange: "30m", Window: models.WindowBounds{Start: q.Start, End: q.End}}, nil
}

func (f *fakeViews) Degraded() bool { return f.degraded }

func (f *fakeViews) Ping(ctx context.Context) error {
	if f.pingHangs {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.pingErr
}

// fakeGraph implements GraphViews.
type fakeGraph struct {
	enabled bool
	err     error
	label   string
	id      string
}

func (g *fakeGraph) Enabled() bool              { return g.enabled }
func (g *fakeGraph) Ping(context.Context) error { return nil }

func (g *fakeGraph) Records(_ context.Context, limit int) (*models.GraphRecords, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &models.GraphRecords{Records: []models.GraphRecord{}, Limit: limit}, nil
}

func (g *fakeGraph) Identities(context.Context, graph.IdentityQuery) (*models.Identities, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &models.Identities{TimeRange: "30m", Faces: []models.FaceIdentity{}, Plates: []models.PlateIdentity{}}, nil
}

func (g *fakeGraph) NodeRelationships(_ context.Context, label, id string) (*models.NodeRelationships, error) {
	g.label, g.id = label, id
	if g.err != nil {
		return nil, g.err
	}
	return &models.NodeRelationships{Node: &models.GraphNode{}, Connections: []models.Connection{}}, nil
}

// testServer bundles a router over fakes.
type testServer struct {
	handler http.Handler
	views   *fakeViews
	graph   *fakeGraph
	jwt     *auth.JWTManager
}

func newTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()

	views := newFakeViews()
	g := &fakeGraph{enabled: true}

	jwtManager, err := auth.NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	verifier, err := auth.NewPasswordVerifier(string(hash))
	if err != nil {
		t.Fatalf("NewPasswordVerifier: %v", err)
	}

	h := NewHandler(HandlerDeps{
		Views:    views,
		Graph:    g,
		Auth:     auth.NewMiddleware(jwtManager, authEnabled, false),
		JWT:      jwtManager,
		Password: verifier,
	})

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	router := NewRouter(h, NewChiMiddleware(cfg), nil, RouterOptions{})

	return &testServer{handler: router.Setup(), views: views, graph: g, jwt: jwtManager}
}

func (s *testServer) do(t *testing.T, method, target string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// rawEnvelope is an APIResponse with undecoded data and filters.
type rawEnvelope struct {
	Status    string           `json:"status"`
	Data      json.RawMessage  `json:"data"`
	Filters   json.RawMessage  `json:"filters"`
	Timestamp time.Time        `json:"timestamp"`
	Metadata  *models.Metadata `json:"metadata"`
	Error     *models.APIError `json:"error"`
}

// decodeEnvelope parses the response body.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) rawEnvelope {
	t.Helper()
	var env rawEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}
