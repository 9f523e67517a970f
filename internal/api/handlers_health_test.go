// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelboard/reelboard/internal/config"
	"github.com/reelboard/reelboard/internal/models"
)

// fakeReadiness is a ReadinessProbe with a fixed outcome.
type fakeReadiness struct {
	err   error
	state string
}

func (f *fakeReadiness) Check(ctx context.Context) error { return f.err }
func (f *fakeReadiness) State() string                   { return f.state }

func newHealthTestHandler(probe ReadinessProbe) *Handler {
	return NewHandler(&mockStore{}, newTestConfig(), probe, "1.2.3")
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := newHealthTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	h.HealthLive(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != models.StatusSuccess {
		t.Errorf("Expected status success, got %s", env.Status)
	}

	var payload healthStatus
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("Failed to decode health payload: %v", err)
	}
	if payload.Status != "alive" {
		t.Errorf("Expected status alive, got %s", payload.Status)
	}
	if payload.Version != "1.2.3" {
		t.Errorf("Expected version 1.2.3, got %s", payload.Version)
	}
	if payload.InstanceID == "" {
		t.Error("Expected instance ID to be set")
	}
	if payload.UptimeSeconds < 0 {
		t.Errorf("Expected non-negative uptime, got %f", payload.UptimeSeconds)
	}
}

func TestHealthLive_DoesNotTouchStore(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	h := NewHandler(store, newTestConfig(), &fakeReadiness{state: "closed"}, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	h.HealthLive(rec, req)

	store.mu.Lock()
	total := len(store.calls)
	store.mu.Unlock()
	if total != 0 {
		t.Errorf("Expected liveness to skip the store entirely, saw %d calls", total)
	}
}

func TestHealthReady_Ready(t *testing.T) {
	t.Parallel()

	h := newHealthTestHandler(&fakeReadiness{state: "closed"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil)
	rec := httptest.NewRecorder()
	h.HealthReady(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != models.StatusSuccess {
		t.Errorf("Expected status success, got %s", env.Status)
	}

	var payload readyStatus
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("Failed to decode ready payload: %v", err)
	}
	if !payload.Ready {
		t.Error("Expected ready to be true")
	}
	if payload.BreakerState != "closed" {
		t.Errorf("Expected breaker state closed, got %s", payload.BreakerState)
	}
}

func TestHealthReady_NotReady(t *testing.T) {
	t.Parallel()

	h := newHealthTestHandler(&fakeReadiness{
		err:   errors.New("readiness check failed: server selection timeout"),
		state: "open",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil)
	rec := httptest.NewRecorder()
	h.HealthReady(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != models.StatusError {
		t.Errorf("Expected status error, got %s", env.Status)
	}
	if env.Error == nil || env.Error.Code != models.CodeUnavailable {
		t.Errorf("Expected SERVICE_UNAVAILABLE, got %+v", env.Error)
	}

	var payload readyStatus
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("Failed to decode ready payload: %v", err)
	}
	if payload.Ready {
		t.Error("Expected ready to be false")
	}
	if payload.BreakerState != "open" {
		t.Errorf("Expected breaker state open, got %s", payload.BreakerState)
	}
}

func TestHealthReady_NilProbe(t *testing.T) {
	t.Parallel()

	h := NewHandler(&mockStore{}, &config.Config{}, nil, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil)
	rec := httptest.NewRecorder()
	h.HealthReady(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != models.CodeUnavailable {
		t.Errorf("Expected SERVICE_UNAVAILABLE, got %+v", env.Error)
	}
}
