// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// stageKeys returns the operator name of each pipeline stage in order.
func stageKeys(t *testing.T, pipeline mongo.Pipeline) []string {
	t.Helper()

	keys := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		if len(stage) != 1 {
			t.Fatalf("Expected single-operator stage, got %v", stage)
		}
		keys = append(keys, stage[0].Key)
	}
	return keys
}

// stageValue returns the value of the first stage with the given operator.
func stageValue(t *testing.T, pipeline mongo.Pipeline, op string) interface{} {
	t.Helper()

	for _, stage := range pipeline {
		if stage[0].Key == op {
			return stage[0].Value
		}
	}
	t.Fatalf("Stage %s not found", op)
	return nil
}

// docValue returns the value of the given key in a bson.D document.
func docValue(t *testing.T, v interface{}, key string) interface{} {
	t.Helper()

	d, ok := v.(bson.D)
	if !ok {
		t.Fatalf("Expected bson.D, got %T", v)
	}
	for _, e := range d {
		if e.Key == key {
			return e.Value
		}
	}
	t.Fatalf("Key %s not found in %v", key, d)
	return nil
}

func TestRankLoweredPipeline_StageOrder(t *testing.T) {
	pipeline := rankLoweredPipeline("genres", 10)

	want := []string{"$match", "$unwind", "$match", "$group", "$project", "$sort", "$limit"}
	got := stageKeys(t, pipeline)

	if len(got) != len(want) {
		t.Fatalf("Expected %d stages, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stage %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRankLoweredPipeline_CaseFolding(t *testing.T) {
	pipeline := rankLoweredPipeline("directors", 10)

	if got := stageValue(t, pipeline, "$unwind"); got != "$directors" {
		t.Errorf("Expected $unwind $directors, got %v", got)
	}

	group := stageValue(t, pipeline, "$group")
	id := docValue(t, group, "_id")
	if got := docValue(t, id, "$toLower"); got != "$directors" {
		t.Errorf("Expected $toLower $directors, got %v", got)
	}
}

func TestRankLoweredPipeline_SortAndLimit(t *testing.T) {
	pipeline := rankLoweredPipeline("genres", 25)

	sort := stageValue(t, pipeline, "$sort")
	d, ok := sort.(bson.D)
	if !ok || len(d) != 2 {
		t.Fatalf("Expected two-key sort, got %v", sort)
	}
	if d[0].Key != "count" || d[0].Value != -1 {
		t.Errorf("Expected count descending first, got %v", d[0])
	}
	if d[1].Key != "key" || d[1].Value != 1 {
		t.Errorf("Expected key ascending tiebreaker, got %v", d[1])
	}

	if got := stageValue(t, pipeline, "$limit"); got != 25 {
		t.Errorf("Expected limit 25, got %v", got)
	}
}

func TestCommentBucketPipeline_DayUnit(t *testing.T) {
	pipeline := commentBucketPipeline("day", "day")

	want := []string{"$match", "$group", "$project", "$sort"}
	got := stageKeys(t, pipeline)
	if len(got) != len(want) {
		t.Fatalf("Expected %d stages, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stage %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	// The date guard keeps string-typed dates out of $dateTrunc
	match := stageValue(t, pipeline, "$match")
	dateOps := docValue(t, match, "date")
	if got := docValue(t, dateOps, "$type"); got != "date" {
		t.Errorf("Expected $type date guard, got %v", got)
	}

	group := stageValue(t, pipeline, "$group")
	id := docValue(t, group, "_id")
	trunc := docValue(t, id, "$dateTrunc")
	if got := docValue(t, trunc, "date"); got != "$date" {
		t.Errorf("Expected $dateTrunc on $date, got %v", got)
	}
	if got := docValue(t, trunc, "unit"); got != "day" {
		t.Errorf("Expected unit day, got %v", got)
	}
}

func TestCommentBucketPipeline_MonthAlias(t *testing.T) {
	pipeline := commentBucketPipeline("month", "month")

	group := stageValue(t, pipeline, "$group")
	id := docValue(t, group, "_id")
	trunc := docValue(t, id, "$dateTrunc")
	if got := docValue(t, trunc, "unit"); got != "month" {
		t.Errorf("Expected unit month, got %v", got)
	}

	project := stageValue(t, pipeline, "$project")
	if got := docValue(t, project, "month"); got != "$_id" {
		t.Errorf("Expected month projected from $_id, got %v", got)
	}

	sort := stageValue(t, pipeline, "$sort")
	if got := docValue(t, sort, "month"); got != 1 {
		t.Errorf("Expected chronological sort on month, got %v", got)
	}
}
