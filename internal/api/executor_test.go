// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelboard/reelboard/internal/models"
)

func TestExecute_NilStoreReturns500(t *testing.T) {
	t.Parallel()

	h := newTestHandler(nil)
	executor := NewQueryExecutor(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
	rec := httptest.NewRecorder()
	executor.Execute(rec, req, "Genres", nil, func(ctx context.Context) (interface{}, error) {
		t.Fatal("Query must not run without a store")
		return nil, nil
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != models.CodeUnavailable {
		t.Errorf("Expected SERVICE_UNAVAILABLE, got %+v", env.Error)
	}
}

func TestExecute_ComputesOncePerKey(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&mockStore{})
	executor := NewQueryExecutor(h)

	computes := 0
	run := func() envelope {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
		rec := httptest.NewRecorder()
		executor.Execute(rec, req, "Genres", nil, func(ctx context.Context) (interface{}, error) {
			computes++
			return []string{"Drama"}, nil
		})
		return decodeEnvelope(t, rec)
	}

	first := run()
	second := run()

	if computes != 1 {
		t.Errorf("Expected 1 compute within the TTL window, got %d", computes)
	}
	if first.Metadata.Cached {
		t.Error("Expected first response to be uncached")
	}
	if !second.Metadata.Cached {
		t.Error("Expected second response to carry the cached flag")
	}
	if second.Metadata.QueryTimeMS != 0 {
		t.Errorf("Expected cache hits to report zero query time, got %d", second.Metadata.QueryTimeMS)
	}
}

func TestExecute_DistinctParamsComputeSeparately(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&mockStore{})
	executor := NewQueryExecutor(h)

	computes := 0
	run := func(limit int) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/top-genres", nil)
		rec := httptest.NewRecorder()
		executor.Execute(rec, req, "TopGenres", limitParams{Limit: limit}, func(ctx context.Context) (interface{}, error) {
			computes++
			return []models.GenreCount{}, nil
		})
	}

	run(10)
	run(25)
	run(10)

	if computes != 2 {
		t.Errorf("Expected 2 computes for 2 distinct parameter sets, got %d", computes)
	}
}

func TestExecute_ErrorProducesDegradedEnvelope(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&mockStore{})
	executor := NewQueryExecutor(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
	rec := httptest.NewRecorder()
	executor.Execute(rec, req, "Genres", nil, func(ctx context.Context) (interface{}, error) {
		return nil, errors.New("cursor closed")
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected degraded responses to stay 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Status != models.StatusDegraded {
		t.Errorf("Expected status degraded, got %s", env.Status)
	}
	if env.Error == nil || env.Error.Code != models.CodeQueryError {
		t.Errorf("Expected QUERY_ERROR, got %+v", env.Error)
	}
}

func TestExecute_RequestContextReachesQuery(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&mockStore{})
	executor := NewQueryExecutor(h)

	type ctxKey string
	const marker ctxKey = "marker"

	req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
	req = req.WithContext(context.WithValue(req.Context(), marker, "present"))
	rec := httptest.NewRecorder()

	var seen interface{}
	executor.Execute(rec, req, "Genres", nil, func(ctx context.Context) (interface{}, error) {
		seen = ctx.Value(marker)
		return []string{}, nil
	})

	if seen != "present" {
		t.Errorf("Expected request context to reach the query, got %v", seen)
	}
}
