// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

// Package api provides the HTTP layer of the dashboard backend: Chi routing,
// request parsing, and the cache-first query executor that turns catalog
// results into the standard JSON envelope.
//
// The package is organized as:
//   - handlers.go: Handler struct, Store interface, constructor
//   - helpers.go: response envelope writers and query string helpers
//   - params.go: filter and limit parsing with validation
//   - executor.go: cache-first query execution with degraded fallback
//   - handlers_meta.go: genre list, year bounds, movie listing
//   - handlers_analytics.go: chart endpoints (8 methods)
//   - handlers_kpis.go: headline counters
//   - handlers_health.go: liveness and readiness probes
//   - chi_middleware.go: CORS and rate limiting factories
//   - chi_router.go: route registration
//
// Every data endpoint shares one error policy: a failed query degrades the
// response instead of erroring it. The HTTP status stays 200, the envelope
// carries status "degraded" with an empty data table and a QUERY_ERROR, and
// the dashboard renders an empty panel rather than breaking the page.
package api
