// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/reelboard/reelboard/internal/cache"
	"github.com/reelboard/reelboard/internal/models"
)

// QueryExecutor runs dashboard queries through the result cache and writes
// the standard response envelope.
//
// Error policy: a failed query does not produce an HTTP error. The response
// stays 200 with status "degraded", an empty data table, and a QUERY_ERROR
// naming what could not be retrieved. Failures are never cached; the next
// request retries the query.
type QueryExecutor struct {
	handler *Handler
}

// NewQueryExecutor creates a query executor bound to the handler's cache and store.
func NewQueryExecutor(h *Handler) *QueryExecutor {
	return &QueryExecutor{handler: h}
}

// Execute runs queryFunc keyed by queryName and params. Cache hits carry
// Cached=true in the metadata; misses record the elapsed query time in
// milliseconds. params must be stable under JSON marshaling since it forms
// the cache key; nil is valid for parameterless queries.
func (e *QueryExecutor) Execute(w http.ResponseWriter, r *http.Request, queryName string, params interface{}, queryFunc func(ctx context.Context) (interface{}, error)) {
	if e.handler.store == nil {
		respondError(w, http.StatusInternalServerError, models.CodeUnavailable, "Database not initialized", nil)
		return
	}

	start := time.Now()

	result, hit, err := cache.Fetch(r.Context(), e.handler.cache, queryName, params, queryFunc)
	if err != nil {
		respondDegraded(w, r, queryName, time.Since(start), err)
		return
	}

	metadata := models.Metadata{Timestamp: time.Now()}
	if hit {
		metadata.Cached = true
	} else {
		metadata.QueryTimeMS = time.Since(start).Milliseconds()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     result,
		Metadata: metadata,
	})
}
