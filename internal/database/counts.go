// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountMovies returns the total number of documents in the movies collection.
func (db *DB) CountMovies(ctx context.Context) (int64, error) {
	return db.count(ctx, db.movies, opCountMovies)
}

// CountComments returns the total number of documents in the comments collection.
func (db *DB) CountComments(ctx context.Context) (int64, error) {
	return db.count(ctx, db.comments, opCountComments)
}

// CountUsers returns the total number of documents in the users collection.
func (db *DB) CountUsers(ctx context.Context) (int64, error) {
	return db.count(ctx, db.users, opCountUsers)
}

// CountDistinctDirectors returns the number of distinct directors credited
// across the catalog, counted case-insensitively. An empty catalog yields
// zero, not an error.
func (db *DB) CountDistinctDirectors(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: presentMatch("directors")}},
		{{Key: "$unwind", Value: "$directors"}},
		{{Key: "$match", Value: typeMatch("directors", "string")}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$toLower", Value: "$directors"}}},
		}}},
		{{Key: "$count", Value: "count"}},
	}

	type countDoc struct {
		Count int64 `bson:"count"`
	}

	docs, err := aggregate[countDoc](ctx, db, db.movies, opDistinctDirectors, pipeline)
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}
	return docs[0].Count, nil
}
