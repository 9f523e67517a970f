// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/reelboard/reelboard/internal/logging"
	"github.com/reelboard/reelboard/internal/metrics"
)

// healthCheckTimeout bounds a single readiness ping so a stalled MongoDB
// connection cannot hold the readiness endpoint open.
const healthCheckTimeout = 5 * time.Second

// pinger is the connectivity probe the health checker guards. *DB satisfies it.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker wraps the MongoDB ping with circuit breaker protection for
// the readiness probe. When MongoDB is down, repeated probe failures open
// the circuit and subsequent checks fail fast without touching the driver,
// so an unreachable database cannot pile up blocked readiness requests.
//
// The breaker guards only the health probe. Query traffic is not routed
// through it: a degraded query response already reaches the client quickly,
// and per-query breaking would turn transient aggregation errors into
// minutes of rejected dashboards.
type HealthChecker struct {
	db   pinger
	cb   *gobreaker.CircuitBreaker[interface{}]
	name string
}

// NewHealthChecker creates a circuit-breaker-protected health checker.
// Breaker configuration:
// - 1 probe allowed through in half-open state
// - 1 minute measurement window
// - 30 second timeout before attempting recovery
// - Opens after 3 consecutive failed pings
func NewHealthChecker(db *DB) *HealthChecker {
	cbName := "mongodb-ping"

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 1,                // Allow a single probe in half-open state
		Interval:    time.Minute,      // Reset counts after 1 minute in closed state
		Timeout:     30 * time.Second, // Wait 30 seconds before transitioning from open to half-open

		// ReadyToTrip opens the circuit after 3 consecutive failed pings.
		// Readiness probes are sequential and low-volume, so consecutive
		// failures are a better signal than a failure-rate threshold.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= 3

			if shouldTrip {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		// OnStateChange is called whenever the circuit breaker changes state
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			// Update metrics
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &HealthChecker{
		db:   db,
		cb:   cb,
		name: cbName,
	}
}

// Check pings MongoDB through the circuit breaker. Returns nil when the
// database answered, a wrapped rejection error when the circuit is open,
// and the wrapped ping error otherwise.
func (hc *HealthChecker) Check(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	_, err := hc.cb.Execute(func() (interface{}, error) {
		return nil, hc.db.Ping(pingCtx)
	})

	// Update metrics based on result
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			// Circuit is open or a probe is already in flight in half-open state
			metrics.CircuitBreakerRequests.WithLabelValues(hc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Readiness check rejected")
			return fmt.Errorf("readiness check rejected: %w", err)
		}

		metrics.CircuitBreakerRequests.WithLabelValues(hc.name, "failure").Inc()
		return fmt.Errorf("readiness check failed: %w", err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(hc.name, "success").Inc()
	return nil
}

// State reports the current breaker state for the readiness payload.
func (hc *HealthChecker) State() string {
	return stateToString(hc.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
