// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"net/http"
	"time"

	"github.com/reelboard/reelboard/internal/models"
)

// healthStatus is the liveness payload.
type healthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	InstanceID    string  `json:"instance_id"`
}

// readyStatus is the readiness payload.
type readyStatus struct {
	Ready         bool    `json:"ready"`
	BreakerState  string  `json:"breaker_state"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Description Returns 200 OK whenever the process is alive, regardless of database connectivity. Used for Kubernetes liveness probes.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: healthStatus{
			Status:        "alive",
			Version:       h.version,
			UptimeSeconds: time.Since(h.startTime).Seconds(),
			InstanceID:    h.instanceID,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the service is ready to handle traffic
//
// The probe pings MongoDB through a circuit breaker: after three consecutive
// failures the breaker opens and the probe fails fast without touching the
// database until the recovery timeout elapses. The breaker state is reported
// in the payload either way.
//
// @Summary Readiness probe
// @Description Returns 200 OK when MongoDB is reachable. Returns 503 with the circuit breaker state when the ping fails or the breaker is open.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.readiness == nil {
		respondError(w, http.StatusServiceUnavailable, models.CodeUnavailable, "Readiness checker not initialized", nil)
		return
	}

	err := h.readiness.Check(r.Context())
	status := readyStatus{
		Ready:         err == nil,
		BreakerState:  h.readiness.State(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: models.StatusError,
			Data:   status,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
			Error: &models.APIError{
				Code:    models.CodeUnavailable,
				Message: "Database is not reachable",
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   status,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
