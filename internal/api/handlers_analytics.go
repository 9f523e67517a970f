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

// This file contains the chart endpoints backing the dashboard panels.
//
// Analytics Endpoints (8 total):
//   - AvgRatingByYear: Average IMDb rating per release year (line chart)
//   - MoviesByGenre: Movie counts per genre within the filters (bar chart)
//   - RatingHistogram: Rating distribution in unit-wide buckets (histogram)
//   - TopGenres: Most frequent genres, case-folded (ranked bar chart)
//   - TopDirectors: Most credited directors, case-folded (ranked bar chart)
//   - VotesVsRating: Vote count against rating per movie (scatter plot)
//   - CommentsOverTime: Comment volume per day (time series)
//   - CommentsPerMonth: Comment volume per calendar month (time series)
//
// All endpoints share the TTL cache and the degraded error policy; a chart
// whose query fails renders empty rather than erroring the page.

// limitParams keys cached results of ranked and scatter queries.
type limitParams struct {
	Limit int `json:"limit"`
}

// AvgRatingByYear returns the average rating per release year.
//
// @Summary Average rating by release year
// @Description Returns the average IMDb rating and movie count per release year within the filters, sorted by year ascending.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param year_min query int false "Minimum release year (inclusive)"
// @Param year_max query int false "Maximum release year (inclusive)"
// @Param genres query string false "Comma-separated genre list"
// @Param min_rating query number false "Minimum IMDb rating (0-10)"
// @Success 200 {object} models.APIResponse{data=[]models.AvgRatingRow} "Average ratings retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid filter parameters"
// @Router /analytics/avg-rating-by-year [get]
func (h *Handler) AvgRatingByYear(w http.ResponseWriter, r *http.Request) {
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
	executor.Execute(w, r, "AvgRatingByYear", filter, func(ctx context.Context) (interface{}, error) {
		rows, err := h.store.AvgRatingByYear(ctx, filter)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.AvgRatingRow{}
		}
		return rows, nil
	})
}

// MoviesByGenre returns movie counts per genre within the year and rating
// filters. The route takes no genre restriction; the chart always shows the
// full genre breakdown.
//
// @Summary Movie counts per genre
// @Description Returns the number of movies per genre within the year range and minimum rating, sorted by count descending. Stored genre casing is preserved.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param year_min query int false "Minimum release year (inclusive)"
// @Param year_max query int false "Maximum release year (inclusive)"
// @Param min_rating query number false "Minimum IMDb rating (0-10)"
// @Success 200 {object} models.APIResponse{data=[]models.GenreCount} "Genre counts retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid filter parameters"
// @Router /analytics/movies-by-genre [get]
func (h *Handler) MoviesByGenre(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	filter, apiErr := h.filterFromQuery(r)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	filter.Genres = nil

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "MoviesByGenre", filter, func(ctx context.Context) (interface{}, error) {
		rows, err := h.store.MoviesByGenre(ctx, filter)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.GenreCount{}
		}
		return rows, nil
	})
}

// RatingHistogram returns the rating distribution in unit-wide buckets.
//
// @Summary Rating distribution histogram
// @Description Returns movie counts per unit-wide rating bucket from 0 to 10. An empty collection yields an empty table, not an error.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.RatingBucket} "Histogram retrieved successfully"
// @Router /analytics/rating-histogram [get]
func (h *Handler) RatingHistogram(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "RatingHistogram", nil, func(ctx context.Context) (interface{}, error) {
		rows, err := h.store.RatingHistogram(ctx)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.RatingBucket{}
		}
		return rows, nil
	})
}

// TopGenres returns the most frequent genres across the whole collection.
//
// @Summary Top genres by movie count
// @Description Returns the most frequent genres with case-folded keys, sorted by count descending then genre ascending.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param limit query int false "Number of genres to return (default 10, max 1000)"
// @Success 200 {object} models.APIResponse{data=[]models.GenreCount} "Top genres retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid limit parameter"
// @Router /analytics/top-genres [get]
func (h *Handler) TopGenres(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	limit, apiErr := limitFromQuery(r, defaultRankLimit)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "TopGenres", limitParams{Limit: limit}, func(ctx context.Context) (interface{}, error) {
		rows, err := h.store.TopGenres(ctx, limit)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.GenreCount{}
		}
		return rows, nil
	})
}

// TopDirectors returns the most credited directors across the whole collection.
//
// @Summary Top directors by movie count
// @Description Returns the most credited directors with case-folded keys, sorted by count descending then director ascending.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param limit query int false "Number of directors to return (default 10, max 1000)"
// @Success 200 {object} models.APIResponse{data=[]models.DirectorCount} "Top directors retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid limit parameter"
// @Router /analytics/top-directors [get]
func (h *Handler) TopDirectors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	limit, apiErr := limitFromQuery(r, defaultRankLimit)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "TopDirectors", limitParams{Limit: limit}, func(ctx context.Context) (interface{}, error) {
		rows, err := h.store.TopDirectors(ctx, limit)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.DirectorCount{}
		}
		return rows, nil
	})
}

// VotesVsRating returns the vote count and rating per movie for the scatter plot.
//
// @Summary Votes against rating scatter data
// @Description Returns title, year, rating, and vote count for the most voted movies, sorted by votes descending.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param limit query int false "Number of movies to return (default 500, max 1000)"
// @Success 200 {object} models.APIResponse{data=[]models.VotesRating} "Scatter data retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid limit parameter"
// @Router /analytics/votes-vs-rating [get]
func (h *Handler) VotesVsRating(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	limit, apiErr := limitFromQuery(r, defaultScatterLimit)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "VotesVsRating", limitParams{Limit: limit}, func(ctx context.Context) (interface{}, error) {
		rows, err := h.store.VotesVsRating(ctx, limit)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.VotesRating{}
		}
		return rows, nil
	})
}

// CommentsOverTime returns the daily comment volume.
//
// @Summary Comment volume per day
// @Description Returns comment counts bucketed by calendar day, sorted ascending. Documents without a valid date are excluded.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.DayCount} "Daily comment counts retrieved successfully"
// @Router /analytics/comments-over-time [get]
func (h *Handler) CommentsOverTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "CommentsOverTime", nil, func(ctx context.Context) (interface{}, error) {
		rows, err := h.store.CommentsOverTime(ctx)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.DayCount{}
		}
		return rows, nil
	})
}

// CommentsPerMonth returns the monthly comment volume.
//
// @Summary Comment volume per month
// @Description Returns comment counts bucketed by calendar month, sorted ascending. Documents without a valid date are excluded.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.MonthCount} "Monthly comment counts retrieved successfully"
// @Router /analytics/comments-per-month [get]
func (h *Handler) CommentsPerMonth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewQueryExecutor(h)
	executor.Execute(w, r, "CommentsPerMonth", nil, func(ctx context.Context) (interface{}, error) {
		rows, err := h.store.CommentsPerMonth(ctx)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.MonthCount{}
		}
		return rows, nil
	})
}
