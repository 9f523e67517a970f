// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"context"
	"net/http"

	"github.com/reelboard/reelboard/internal/models"
)

// Genres returns the distinct genre values for the filter dropdowns.
//
// @Summary List distinct genres
// @Description Returns all distinct genres from the movies collection, sorted alphabetically with stored casing preserved.
// @Tags Meta
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]string} "Genres retrieved successfully"
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "Genres", nil, func(ctx context.Context) (interface{}, error) {
		genres, err := h.store.ListGenres(ctx)
		if err != nil {
			return nil, err
		}
		if genres == nil {
			genres = []string{}
		}
		return genres, nil
	})
}

// YearBounds returns the usable release year range of the movies collection.
// When no document carries a numeric year, the configured default bounds are
// substituted so the year slider always has a range to render.
//
// @Summary Get dataset year bounds
// @Description Returns the minimum and maximum numeric release year in the movies collection, falling back to the configured defaults when no usable years exist.
// @Tags Meta
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.YearBounds} "Year bounds retrieved successfully"
// @Router /years/bounds [get]
func (h *Handler) YearBounds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "YearBounds", nil, func(ctx context.Context) (interface{}, error) {
		bounds, ok, err := h.store.YearBounds(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			bounds = models.YearBounds{
				Min: h.config.Analytics.DefaultYearMin,
				Max: h.config.Analytics.DefaultYearMax,
			}
		}
		return bounds, nil
	})
}

// Movies returns the filtered movie listing for the dashboard table.
//
// @Summary List movies matching the dashboard filters
// @Description Returns up to 1000 movies matching the year range, genre, and minimum rating filters, sorted by rating then year descending.
// @Tags Movies
// @Accept json
// @Produce json
// @Param year_min query int false "Minimum release year (inclusive)"
// @Param year_max query int false "Maximum release year (inclusive)"
// @Param genres query string false "Comma-separated genre list"
// @Param min_rating query number false "Minimum IMDb rating (0-10)"
// @Success 200 {object} models.APIResponse{data=[]models.MovieRow} "Movies retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid filter parameters"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	filter, apiErr := h.filterFromQuery(r)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "Movies", filter, func(ctx context.Context) (interface{}, error) {
		movies, err := h.store.FilteredMovies(ctx, filter)
		if err != nil {
			return nil, err
		}
		if movies == nil {
			movies = []models.MovieRow{}
		}
		return movies, nil
	})
}
