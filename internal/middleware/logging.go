// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package middleware

import (
	"net/http"
	"time"

	"github.com/reelboard/reelboard/internal/logging"
)

// slowRequestThreshold marks the latency above which a completed request
// is logged at warn level. Dashboard queries are cached, so anything this
// slow means a cold aggregation or a struggling MongoDB.
const slowRequestThreshold = 1000 * time.Millisecond

// RequestLogger logs every completed request at debug level with method,
// path, status, and duration, escalating slow requests to warn. The
// request and correlation IDs come from the logging context set by
// RequestID, so this middleware must run after it.
func RequestLogger(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next(wrapper, r)

		duration := time.Since(start)

		if duration > slowRequestThreshold {
			logging.CtxWarn(r.Context()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Dur("duration", duration).
				Msg("Slow request")
			return
		}

		logging.CtxDebug(r.Context()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("Request completed")
	}
}
