// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

// Package middleware provides HTTP middleware shared across the API surface:
// request ID propagation with logging context, Prometheus request metrics,
// structured request logging with slow-request warnings, and gzip
// compression. Router-level middleware (CORS, rate limiting) lives in the
// api package where it is configured.
package middleware
