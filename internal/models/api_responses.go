// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package models

import (
	"time"
)

// APIResponse is the standardized wrapper returned by every HTTP endpoint.
// It carries a consistent structure for successful, degraded, and error
// responses, plus metadata for observability and cache introspection.
//
// Status field values:
//   - "success": request completed, see Data
//   - "degraded": the backing query failed; Data is an empty table and
//     Error carries the surfaced message (the dashboard renders an empty
//     chart plus an informational note instead of failing the whole view)
//   - "error": the request itself was invalid, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"genre": "Drama", "count": 120}],
//	  "metadata": {
//	    "timestamp": "2026-08-23T12:00:00Z",
//	    "query_time_ms": 45
//	  }
//	}
//
// Example degraded response:
//
//	{
//	  "status": "degraded",
//	  "data": [],
//	  "error": {"code": "QUERY_ERROR", "message": "aggregation failed"},
//	  "metadata": {"timestamp": "2026-08-23T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for performance tracking.
//
// Cached responses report QueryTimeMS 0 and Cached true; fresh queries
// report the measured store round-trip time.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError carries structured error details.
//
// Common codes:
//   - VALIDATION_ERROR: invalid filter or limit parameters
//   - QUERY_ERROR: aggregation request failed (degraded response)
//   - NOT_FOUND: unknown route
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Response status values used across the API.
const (
	StatusSuccess  = "success"
	StatusDegraded = "degraded"
	StatusError    = "error"
)

// Error codes used across the API.
const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeQueryError        = "QUERY_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeUnavailable       = "SERVICE_UNAVAILABLE"
)
