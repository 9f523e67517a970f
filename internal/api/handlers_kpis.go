// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/reelboard/reelboard/internal/models"
)

// kpiCount pairs a named count query with its destination in the report.
type kpiCount struct {
	name  string
	dest  *int64
	query func(context.Context) (int64, error)
}

// computeKPIs runs the four headline counts in parallel and assembles the
// report. Each goroutine writes a distinct field; wg.Wait orders those writes
// before the report is read. All four counts must succeed.
func (h *Handler) computeKPIs(ctx context.Context) (models.KPIReport, error) {
	var report models.KPIReport

	counts := []kpiCount{
		{"movies", &report.Movies, h.store.CountMovies},
		{"comments", &report.Comments, h.store.CountComments},
		{"users", &report.Users, h.store.CountUsers},
		{"distinct directors", &report.DistinctDirectors, h.store.CountDistinctDirectors},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, c := range counts {
		wg.Add(1)
		go func(c kpiCount) {
			defer wg.Done()
			n, err := c.query(ctx)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to count %s: %w", c.name, err)
				}
				mu.Unlock()
				return
			}
			*c.dest = n
		}(c)
	}

	wg.Wait()
	if firstErr != nil {
		return models.KPIReport{}, firstErr
	}
	return report, nil
}

// KPIs returns the headline counters for the dashboard cards.
//
// @Summary Get headline KPI counts
// @Description Returns total movies, comments, users, and distinct directors in a single document. The counts run in parallel; if any fails the whole report degrades.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.KPIReport} "KPI counts retrieved successfully"
// @Router /kpis [get]
func (h *Handler) KPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "KPIs", nil, func(ctx context.Context) (interface{}, error) {
		return h.computeKPIs(ctx)
	})
}
