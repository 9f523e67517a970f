// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package models

import (
	"time"
)

// MovieRow is one row of the filtered-movies listing.
//
// Year and Rating are coerced best-effort after retrieval: the source store
// enforces no schema, so either may be null when a document carries an
// absent or non-numeric value. Listing rows are never dropped for failed
// coercion; only chart queries require their numeric columns.
type MovieRow struct {
	Title     string   `json:"title"`
	Year      *float64 `json:"year"`
	Genres    []string `json:"genres"`
	Rating    *float64 `json:"rating"`
	Countries []string `json:"countries"`
}

// YearBounds is the single-row min/max summary over numeric release years.
// When no document carries a numeric year the query reports absence and the
// caller substitutes the configured default range instead of failing.
type YearBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AvgRatingRow is one per-year aggregation row: the mean IMDb rating and
// the number of movies contributing to it. Rows are sorted strictly
// ascending by year; a grouped year appears at most once.
type AvgRatingRow struct {
	Year      float64 `json:"year"`
	AvgRating float64 `json:"avg_rating"`
	Count     int64   `json:"count"`
}

// GenreCount is one genre bucket with its movie count. A movie listing N
// genres contributes N occurrences, one per genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

// DirectorCount is one director bucket with the number of credited movies.
// Director keys are grouped case-insensitively.
type DirectorCount struct {
	Director string `json:"director"`
	Count    int64  `json:"count"`
}

// RatingBucket is one histogram bucket over IMDb ratings. Bucket is the
// inclusive lower bound of a unit-wide bucket; ratings of exactly 10 land
// in bucket 10.
type RatingBucket struct {
	Bucket float64 `json:"bucket"`
	Count  int64   `json:"count"`
}

// VotesRating is one scatter point relating vote volume to rating. Both
// Rating and Votes passed the numeric type guard; Year is display-only and
// may be null.
type VotesRating struct {
	Title  string   `json:"title"`
	Year   *float64 `json:"year"`
	Rating float64  `json:"rating"`
	Votes  float64  `json:"votes"`
}

// DayCount is one calendar-day bucket of comment activity.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

// MonthCount is one calendar-month bucket of comment activity.
type MonthCount struct {
	Month time.Time `json:"month"`
	Count int64     `json:"count"`
}

// KPIReport bundles the headline collection counts shown at the top of the
// dashboard. DistinctDirectors is computed case-insensitively.
type KPIReport struct {
	Movies            int64 `json:"movies"`
	Comments          int64 `json:"comments"`
	Users             int64 `json:"users"`
	DistinctDirectors int64 `json:"distinct_directors"`
}
