// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reelboard/reelboard/internal/models"
)

// Result caps for the movie catalog queries
const (
	// movieListLimit caps FilteredMovies rows. Behavioral contract of the
	// listing endpoint, not a tunable.
	movieListLimit = 1000

	// defaultTopLimit is used when a ranking query gets a non-positive limit
	defaultTopLimit = 10

	// defaultScatterLimit is used when VotesVsRating gets a non-positive limit
	defaultScatterLimit = 500
)

// ListGenres returns every distinct genre value across the movie catalog,
// deduplicated and sorted lexicographically. Stored casing is preserved:
// "Drama" and "drama" are distinct entries if both exist in the data.
func (db *DB) ListGenres(ctx context.Context) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$genres"}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$genres"}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "genre", Value: "$_id"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "genre", Value: 1}}}},
	}

	type genreDoc struct {
		Genre interface{} `bson:"genre"`
	}

	docs, err := aggregate[genreDoc](ctx, db, db.movies, opListGenres, pipeline)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(docs))
	for _, d := range docs {
		if s, ok := d.Genre.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// YearBounds returns the minimum and maximum numeric release year in the
// catalog. The second return is false when the catalog holds no numeric
// years at all; the caller substitutes its configured default range.
func (db *DB) YearBounds(ctx context.Context) (models.YearBounds, bool, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: typeMatch("year", "number")}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "min", Value: bson.D{{Key: "$min", Value: "$year"}}},
			{Key: "max", Value: bson.D{{Key: "$max", Value: "$year"}}},
		}}},
	}

	type boundsDoc struct {
		Min interface{} `bson:"min"`
		Max interface{} `bson:"max"`
	}

	docs, err := aggregate[boundsDoc](ctx, db, db.movies, opYearBounds, pipeline)
	if err != nil {
		return models.YearBounds{}, false, err
	}
	if len(docs) == 0 {
		return models.YearBounds{}, false, nil
	}

	minYear, minOK := asFloat(docs[0].Min)
	maxYear, maxOK := asFloat(docs[0].Max)
	if !minOK || !maxOK {
		return models.YearBounds{}, false, nil
	}

	return models.YearBounds{Min: int(minYear), Max: int(maxYear)}, true, nil
}

// FilteredMovies returns the raw movie listing for the active filter, sorted
// by rating then year descending and capped at 1000 rows. Listing rows are
// never dropped for coercion failures: year and rating columns go null when
// a document carries them in a non-numeric shape.
func (db *DB) FilteredMovies(ctx context.Context, f models.FilterParams) ([]models.MovieRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: movieMatch(f)}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "title", Value: 1},
			{Key: "year", Value: 1},
			{Key: "genres", Value: 1},
			{Key: "rating", Value: "$imdb.rating"},
			{Key: "countries", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "rating", Value: -1},
			{Key: "year", Value: -1},
		}}},
		{{Key: "$limit", Value: movieListLimit}},
	}

	type movieDoc struct {
		Title     string      `bson:"title"`
		Year      interface{} `bson:"year"`
		Genres    []string    `bson:"genres"`
		Rating    interface{} `bson:"rating"`
		Countries []string    `bson:"countries"`
	}

	docs, err := aggregate[movieDoc](ctx, db, db.movies, opFilteredMovies, pipeline)
	if err != nil {
		return nil, err
	}

	out := make([]models.MovieRow, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.MovieRow{
			Title:     d.Title,
			Year:      asFloatPtr(d.Year),
			Genres:    orEmpty(d.Genres),
			Rating:    asFloatPtr(d.Rating),
			Countries: orEmpty(d.Countries),
		})
	}
	return out, nil
}

// AvgRatingByYear returns the average rating and movie count per release
// year for the active filter, sorted by year ascending. Rows whose year or
// average fails numeric coercion are dropped; the remaining series is
// strictly ascending with no duplicate years (one $group bucket per year).
func (db *DB) AvgRatingByYear(ctx context.Context, f models.FilterParams) ([]models.AvgRatingRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: movieMatch(f)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$year"},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$imdb.rating"}}},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "year", Value: "$_id"},
			{Key: "avgRating", Value: 1},
			{Key: "count", Value: "$n"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: 1}}}},
	}

	type yearAvgDoc struct {
		Year      interface{} `bson:"year"`
		AvgRating interface{} `bson:"avgRating"`
		Count     int64       `bson:"count"`
	}

	docs, err := aggregate[yearAvgDoc](ctx, db, db.movies, opAvgRatingByYear, pipeline)
	if err != nil {
		return nil, err
	}

	out := make([]models.AvgRatingRow, 0, len(docs))
	for _, d := range docs {
		year, yearOK := asFloat(d.Year)
		avg, avgOK := asFloat(d.AvgRating)
		if !yearOK || !avgOK {
			continue
		}
		out = append(out, models.AvgRatingRow{
			Year:      year,
			AvgRating: avg,
			Count:     d.Count,
		})
	}
	return out, nil
}

// MoviesByGenre returns the number of matching movies per genre for the
// year and rating filter, sorted by count descending. A movie with three
// genres counts once per genre, so counts sum to at least the matching
// movie total. Stored genre casing is preserved.
func (db *DB) MoviesByGenre(ctx context.Context, f models.FilterParams) ([]models.GenreCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: movieGenreMatch(f)}},
		{{Key: "$unwind", Value: "$genres"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genres"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "genre", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	type genreCountDoc struct {
		Genre interface{} `bson:"genre"`
		Count int64       `bson:"count"`
	}

	docs, err := aggregate[genreCountDoc](ctx, db, db.movies, opMoviesByGenre, pipeline)
	if err != nil {
		return nil, err
	}

	out := make([]models.GenreCount, 0, len(docs))
	for _, d := range docs {
		s, ok := d.Genre.(string)
		if !ok {
			continue
		}
		out = append(out, models.GenreCount{Genre: s, Count: d.Count})
	}
	return out, nil
}

// RatingHistogram buckets the catalog's numeric ratings into integer-wide
// bins 0..9, with ratings of exactly 10 folded into the top bucket. Buckets
// with no members are absent from the result; an empty catalog yields an
// empty table, not an error.
func (db *DB) RatingHistogram(ctx context.Context) ([]models.RatingBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "imdb.rating", Value: bson.D{
			{Key: "$type", Value: "number"},
			{Key: "$gte", Value: 0},
		}}}}},
		{{Key: "$bucket", Value: bson.D{
			{Key: "groupBy", Value: "$imdb.rating"},
			{Key: "boundaries", Value: bson.A{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
			{Key: "default", Value: 10},
			{Key: "output", Value: bson.D{
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "bucket", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "bucket", Value: 1}}}},
	}

	type bucketDoc struct {
		Bucket interface{} `bson:"bucket"`
		Count  int64       `bson:"count"`
	}

	docs, err := aggregate[bucketDoc](ctx, db, db.movies, opRatingHistogram, pipeline)
	if err != nil {
		return nil, err
	}

	out := make([]models.RatingBucket, 0, len(docs))
	for _, d := range docs {
		b, ok := asFloat(d.Bucket)
		if !ok {
			continue
		}
		out = append(out, models.RatingBucket{Bucket: b, Count: d.Count})
	}
	return out, nil
}

// TopGenres returns the most frequent genres across the whole catalog,
// grouped case-insensitively, sorted by count descending with genre as the
// tiebreaker. Keys come back lowercased.
func (db *DB) TopGenres(ctx context.Context, limit int) ([]models.GenreCount, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	docs, err := aggregate[lowerCountDoc](ctx, db, db.movies, opTopGenres,
		rankLoweredPipeline("genres", limit))
	if err != nil {
		return nil, err
	}

	out := make([]models.GenreCount, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.GenreCount{Genre: d.Key, Count: d.Count})
	}
	return out, nil
}

// TopDirectors returns the most credited directors across the whole catalog,
// grouped case-insensitively, sorted by count descending with director as
// the tiebreaker. Keys come back lowercased.
func (db *DB) TopDirectors(ctx context.Context, limit int) ([]models.DirectorCount, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	docs, err := aggregate[lowerCountDoc](ctx, db, db.movies, opTopDirectors,
		rankLoweredPipeline("directors", limit))
	if err != nil {
		return nil, err
	}

	out := make([]models.DirectorCount, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.DirectorCount{Director: d.Key, Count: d.Count})
	}
	return out, nil
}

// lowerCountDoc is the shared decode shape for the case-folded rankings
type lowerCountDoc struct {
	Key   string `bson:"key"`
	Count int64  `bson:"count"`
}

// rankLoweredPipeline builds the shared ranking pipeline over an array
// field: keep documents where the field is present, unwind, keep string
// elements, group on the lowercased value, sort by count descending with
// the key as tiebreaker, and cap at limit. The grouped value is projected
// as "key" for the shared decode struct.
func rankLoweredPipeline(field string, limit int) mongo.Pipeline {
	fieldRef := "$" + field
	return mongo.Pipeline{
		{{Key: "$match", Value: presentMatch(field)}},
		{{Key: "$unwind", Value: fieldRef}},
		{{Key: "$match", Value: typeMatch(field, "string")}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$toLower", Value: fieldRef}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "key", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "key", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}
}

// VotesVsRating returns the scatter source relating vote counts to ratings,
// restricted to documents where both are numeric, sorted by votes descending
// and capped at limit.
func (db *DB) VotesVsRating(ctx context.Context, limit int) ([]models.VotesRating, error) {
	if limit <= 0 {
		limit = defaultScatterLimit
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "imdb.rating", Value: bson.D{{Key: "$type", Value: "number"}}},
			{Key: "imdb.votes", Value: bson.D{{Key: "$type", Value: "number"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "title", Value: 1},
			{Key: "year", Value: 1},
			{Key: "rating", Value: "$imdb.rating"},
			{Key: "votes", Value: "$imdb.votes"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "votes", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	type votesDoc struct {
		Title  string      `bson:"title"`
		Year   interface{} `bson:"year"`
		Rating float64     `bson:"rating"`
		Votes  float64     `bson:"votes"`
	}

	docs, err := aggregate[votesDoc](ctx, db, db.movies, opVotesVsRating, pipeline)
	if err != nil {
		return nil, err
	}

	out := make([]models.VotesRating, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.VotesRating{
			Title:  d.Title,
			Year:   asFloatPtr(d.Year),
			Rating: d.Rating,
			Votes:  d.Votes,
		})
	}
	return out, nil
}
