// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reelboard/reelboard/internal/metrics"
)

// Operation names for metrics labels, one per catalog query
const (
	opListGenres        = "list_genres"
	opYearBounds        = "year_bounds"
	opFilteredMovies    = "filtered_movies"
	opAvgRatingByYear   = "avg_rating_by_year"
	opMoviesByGenre     = "movies_by_genre"
	opRatingHistogram   = "rating_histogram"
	opTopGenres         = "top_genres"
	opTopDirectors      = "top_directors"
	opVotesVsRating     = "votes_vs_rating"
	opCommentsOverTime  = "comments_over_time"
	opCommentsPerMonth  = "comments_per_month"
	opCountMovies       = "count_movies"
	opCountComments     = "count_comments"
	opCountUsers        = "count_users"
	opDistinctDirectors = "distinct_directors"
)

// aggregate runs a pipeline on coll and decodes every result document into a
// slice of T. Duration and errors are recorded under the given operation name.
// cursor.All closes the cursor in both success and error paths.
func aggregate[T any](ctx context.Context, db *DB, coll *mongo.Collection, operation string, pipeline mongo.Pipeline) ([]T, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordQuery(operation, coll.Name(), time.Since(start), err)
		return nil, fmt.Errorf("failed to run %s aggregation: %w", operation, err)
	}

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		metrics.RecordQuery(operation, coll.Name(), time.Since(start), err)
		return nil, fmt.Errorf("failed to decode %s results: %w", operation, err)
	}

	metrics.RecordQuery(operation, coll.Name(), time.Since(start), nil)
	return docs, nil
}

// count returns the total number of documents in coll
func (db *DB) count(ctx context.Context, coll *mongo.Collection, operation string) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	n, err := coll.CountDocuments(ctx, bson.D{})
	metrics.RecordQuery(operation, coll.Name(), time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s documents: %w", coll.Name(), err)
	}
	return n, nil
}
