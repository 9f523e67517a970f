// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/reelboard/reelboard/internal/models"
)

// movieMatch builds the $match predicate shared by the filtered movie queries.
//
// The predicate is an $and of:
//   - year within [YearMin, YearMax], numeric documents only
//   - imdb.rating >= MinRating, numeric documents only
//   - genres intersecting the requested set, when the set is non-empty
//
// The $type guards exclude documents with string years or absent ratings
// from the comparison entirely; exclusion is silent and per-document.
// Clauses combine with AND; the genre list combines with OR ($in).
func movieMatch(f models.FilterParams) bson.D {
	and := bson.A{
		bson.D{{Key: "year", Value: bson.D{
			{Key: "$type", Value: "number"},
			{Key: "$gte", Value: f.YearMin},
			{Key: "$lte", Value: f.YearMax},
		}}},
		bson.D{{Key: "imdb.rating", Value: bson.D{
			{Key: "$type", Value: "number"},
			{Key: "$gte", Value: f.MinRating},
		}}},
	}

	if len(f.Genres) > 0 {
		and = append(and, bson.D{{Key: "genres", Value: bson.D{
			{Key: "$in", Value: f.Genres},
		}}})
	}

	return bson.D{{Key: "$and", Value: and}}
}

// movieGenreMatch extends movieMatch with a genres-present clause for
// queries that unwind the genre array
func movieGenreMatch(f models.FilterParams) bson.D {
	match := movieMatch(f)
	and := match[0].Value.(bson.A)
	and = append(and, bson.D{{Key: "genres", Value: bson.D{
		{Key: "$ne", Value: nil},
	}}})
	return bson.D{{Key: "$and", Value: and}}
}

// typeMatch builds a single-field $match requiring the given BSON type
func typeMatch(field, bsonType string) bson.D {
	return bson.D{{Key: field, Value: bson.D{{Key: "$type", Value: bsonType}}}}
}

// presentMatch builds a single-field $match excluding null and absent values
func presentMatch(field string) bson.D {
	return bson.D{{Key: field, Value: bson.D{{Key: "$ne", Value: nil}}}}
}
