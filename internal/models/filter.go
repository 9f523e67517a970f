// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package models

// FilterParams is the immutable filter tuple dashboards supply to the
// parameterized movie queries. It is treated as a value: queries never
// mutate it, and the result cache keys on its exact contents, so two
// requests with identical parameters share one cached table.
//
// Invariants (enforced by validation before any query runs):
//   - YearMin <= YearMax
//   - MinRating within [0, 10]
//   - Genres may be empty, meaning no genre restriction
//
// Genre order is significant for cache identity: the tuple is keyed as
// supplied, mirroring argument-value memoization. Selecting the same genres
// in a different order produces a distinct cache entry with identical
// results, which is harmless.
//
// Mapping to store predicates:
//   - YearMin/YearMax: inclusive range on the numeric year field
//   - Genres: set membership on the genres array (any overlap matches)
//   - MinRating: imdb.rating >= MinRating, restricted to documents whose
//     rating passes the numeric type guard
type FilterParams struct {
	YearMin   int      `json:"year_min"`
	YearMax   int      `json:"year_max" validate:"gtefield=YearMin"`
	Genres    []string `json:"genres,omitempty"`
	MinRating float64  `json:"min_rating" validate:"gte=0,lte=10"`
}
