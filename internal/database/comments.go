// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reelboard/reelboard/internal/models"
)

// CommentsOverTime returns the number of comments posted per calendar day,
// sorted chronologically. Comments whose date field is missing or not a
// BSON date are excluded before grouping.
func (db *DB) CommentsOverTime(ctx context.Context) ([]models.DayCount, error) {
	type dayDoc struct {
		Day   time.Time `bson:"day"`
		Count int64     `bson:"count"`
	}

	docs, err := aggregate[dayDoc](ctx, db, db.comments, opCommentsOverTime,
		commentBucketPipeline("day", "day"))
	if err != nil {
		return nil, err
	}

	out := make([]models.DayCount, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.DayCount{Day: d.Day, Count: d.Count})
	}
	return out, nil
}

// CommentsPerMonth returns the number of comments posted per calendar
// month, sorted chronologically. The month column carries the first
// instant of each month.
func (db *DB) CommentsPerMonth(ctx context.Context) ([]models.MonthCount, error) {
	type monthDoc struct {
		Month time.Time `bson:"month"`
		Count int64     `bson:"count"`
	}

	docs, err := aggregate[monthDoc](ctx, db, db.comments, opCommentsPerMonth,
		commentBucketPipeline("month", "month"))
	if err != nil {
		return nil, err
	}

	out := make([]models.MonthCount, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.MonthCount{Month: d.Month, Count: d.Count})
	}
	return out, nil
}

// commentBucketPipeline builds the shared comment-volume pipeline: keep
// documents whose date is a real BSON date, truncate to the given $dateTrunc
// unit, count per bucket, and sort chronologically. The bucket column is
// projected under alias.
func commentBucketPipeline(unit, alias string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: typeMatch("date", "date")}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateTrunc", Value: bson.D{
				{Key: "date", Value: "$date"},
				{Key: "unit", Value: unit},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: alias, Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: alias, Value: 1}}}},
	}
}
