// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/reelboard/reelboard/internal/config"
	"github.com/reelboard/reelboard/internal/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewChiMiddleware_NilConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m == nil {
		t.Fatal("NewChiMiddleware returned nil")
	}
	if m.config.RateLimitRequests != 100 {
		t.Errorf("Expected default 100 requests, got %d", m.config.RateLimitRequests)
	}
	if m.config.RateLimitWindow != time.Minute {
		t.Errorf("Expected default window of a minute, got %v", m.config.RateLimitWindow)
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("Expected no default CORS origins, got %v", m.config.CORSAllowedOrigins)
	}
}

func TestMiddlewareConfigFromAPI(t *testing.T) {
	t.Parallel()

	mc := MiddlewareConfigFromAPI(config.APIConfig{
		CORSOrigins:       []string{"https://dashboard.example.com"},
		RateLimitRequests: 50,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
	})

	if len(mc.CORSAllowedOrigins) != 1 || mc.CORSAllowedOrigins[0] != "https://dashboard.example.com" {
		t.Errorf("Unexpected CORS origins: %v", mc.CORSAllowedOrigins)
	}
	if mc.RateLimitRequests != 50 {
		t.Errorf("Expected 50 requests, got %d", mc.RateLimitRequests)
	}
	if mc.RateLimitWindow != 30*time.Second {
		t.Errorf("Expected 30s window, got %v", mc.RateLimitWindow)
	}
	if !mc.RateLimitDisabled {
		t.Error("Expected rate limiting to be disabled")
	}
	if mc.RateLimitOnLimit == nil {
		t.Error("Expected a limit handler to be wired")
	}
}

func TestMiddlewareConfigFromAPI_ZeroValuesFallBack(t *testing.T) {
	t.Parallel()

	mc := MiddlewareConfigFromAPI(config.APIConfig{})
	if mc.RateLimitRequests != 100 {
		t.Errorf("Expected default 100 requests, got %d", mc.RateLimitRequests)
	}
	if mc.RateLimitWindow != time.Minute {
		t.Errorf("Expected default minute window, got %v", mc.RateLimitWindow)
	}
}

func TestCORS_PreflightAllowsConfiguredOrigin(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		CORSAllowedMethods: []string{"GET", "OPTIONS"},
		CORSMaxAge:         300,
	})

	handler := m.CORS()(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/genres", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected allowed origin to be echoed, got %q", got)
	}
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		CORSAllowedMethods: []string{"GET", "OPTIONS"},
	})

	handler := m.CORS()(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/genres", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected unknown origin to be rejected, got %q", got)
	}
}

func TestRateLimit_EnforcesLimit(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
		RateLimitOnLimit:  rateLimitExceeded,
	})

	handler := m.RateLimit()(okHandler())

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected third request to get 429, got %d", last.Code)
	}

	env := decodeEnvelope(t, last)
	if env.Error == nil || env.Error.Code != models.CodeRateLimitExceeded {
		t.Errorf("Expected RATE_LIMIT_EXCEEDED, got %+v", env.Error)
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 1,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: true,
	})

	handler := m.RateLimit()(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("Request %d: expected disabled limiter to pass through, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimitCustom_TierLimits(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	})

	handler := m.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/top-genres", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", rec.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/top-genres", nil)
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Errorf("Expected second request to exceed the tier, got %d", rec2.Code)
	}
}

func TestRateLimitCustom_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true})
	handler := m.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/top-genres", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("Request %d: expected disabled limiter to pass through, got %d", i+1, rec.Code)
		}
	}
}
