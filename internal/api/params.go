// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/reelboard/reelboard/internal/models"
)

// Limit bounds for ranked and scatter endpoints. The cap matches the movie
// listing cap so no endpoint can request an unbounded result set.
const (
	defaultRankLimit    = 10
	defaultScatterLimit = 500
	maxResultLimit      = 1000
)

// filterFromQuery builds FilterParams from the request query string.
//
// Omitted parameters fall back to the dashboard defaults: the configured
// year range, no genre restriction, and a zero minimum rating. Malformed
// numbers are rejected rather than silently corrected, as are inverted year
// ranges and ratings outside [0, 10].
func (h *Handler) filterFromQuery(r *http.Request) (models.FilterParams, *models.APIError) {
	q := r.URL.Query()

	filter := models.FilterParams{
		YearMin: h.config.Analytics.DefaultYearMin,
		YearMax: h.config.Analytics.DefaultYearMax,
	}

	if raw := q.Get("year_min"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filter, invalidParam("year_min", raw, "must be an integer")
		}
		filter.YearMin = n
	}

	if raw := q.Get("year_max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filter, invalidParam("year_max", raw, "must be an integer")
		}
		filter.YearMax = n
	}

	if raw := q.Get("min_rating"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, invalidParam("min_rating", raw, "must be a number")
		}
		filter.MinRating = f
	}

	filter.Genres = parseCommaSeparated(q.Get("genres"))

	if apiErr := validateRequest(&filter); apiErr != nil {
		return filter, apiErr
	}

	return filter, nil
}

// limitFromQuery reads the optional limit parameter, applying the given
// default when absent and clamping supplied values to [1, maxResultLimit].
func limitFromQuery(r *http.Request, defaultLimit int) (int, *models.APIError) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam("limit", raw, "must be an integer")
	}

	if n < 1 {
		n = 1
	}
	if n > maxResultLimit {
		n = maxResultLimit
	}
	return n, nil
}

// invalidParam builds the VALIDATION_ERROR payload for a malformed query parameter.
func invalidParam(name, value, reason string) *models.APIError {
	return &models.APIError{
		Code:    models.CodeValidationError,
		Message: fmt.Sprintf("Invalid %s: %s", name, reason),
		Details: map[string]interface{}{
			"param": name,
			"value": value,
		},
	}
}
