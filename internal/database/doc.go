// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

/*
Package database provides MongoDB connectivity and the analytics query catalog.

This package wraps a single *mongo.Client for the process, created once at
startup and shared by every request. The store holds the sample_mflix dataset
(movies, comments, users collections) and is read-only from this system's
perspective: there is no write path, no schema management, no migrations.

# Overview

The package has three responsibilities:

  - Connection lifecycle: New() connects, verifies the deployment with a ping,
    and memoizes the database plus collection handles. Ping failure at startup
    is fatal to the process; there is no retry loop.
  - Query catalog: one method per dashboard query, each building exactly one
    aggregation pipeline over one collection and returning typed row slices.
  - Readiness probing: HealthChecker wraps the runtime Ping in a circuit
    breaker so a down store fails readiness fast instead of stalling every
    probe for the full server selection timeout.

# Query Catalog

Every catalog method follows the same shape:

	func (db *DB) AvgRatingByYear(ctx context.Context, f models.FilterParams) ([]models.AvgRatingRow, error)

Pipelines keep a fixed stage order: $match, then $unwind where the query
fans out over an array field, then $group or $bucket, then $project, $sort,
and $limit where the query is capped. Aggregation is pushed down to MongoDB;
the Go side only decodes, coerces, and shapes rows.

Successful queries always return a non-nil slice, possibly empty. An empty
store yields empty tables, never errors.

# Type Guards and Coercion

Documents in sample_mflix carry absent and wrongly typed fields (string
years, missing ratings). Every field used in a numeric comparison or
arithmetic aggregation carries an explicit $type guard ("number" or "date")
in its $match stage; documents failing the guard are silently excluded from
that computation. After decoding, the coerce helpers (coerce.go) convert BSON
scalars to float64 or time.Time on a best-effort basis: chart queries drop
rows whose required columns fail coercion, listing queries keep the row with
a null column.

# Error Handling

Driver errors pass through unwrapped in meaning: catalog methods wrap them
with operation context (fmt.Errorf + %w) and return them. Nothing in this
package retries, degrades, or swallows a query error; the API layer decides
how failures surface. Connection errors from New() are wrapped the same way
and handled fatally by the caller.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Close()

	genres, err := db.ListGenres(ctx)
	rows, err := db.FilteredMovies(ctx, filter)
*/
package database
