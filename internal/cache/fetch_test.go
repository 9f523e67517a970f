// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type genreRow struct {
	Genre string
	Count int64
}

func TestFetch_ComputesOnceWithinTTL(t *testing.T) {
	c := New(time.Minute)
	computes := 0

	compute := func(_ context.Context) ([]genreRow, error) {
		computes++
		return []genreRow{{Genre: "drama", Count: 120}}, nil
	}

	rows, cached, err := Fetch(context.Background(), c, "TopGenres", 10, compute)
	if err != nil {
		t.Fatalf("Expected first fetch to succeed, got %v", err)
	}
	if cached {
		t.Error("Expected first fetch to miss")
	}
	if len(rows) != 1 || rows[0].Genre != "drama" {
		t.Errorf("Unexpected rows: %v", rows)
	}

	rows, cached, err = Fetch(context.Background(), c, "TopGenres", 10, compute)
	if err != nil {
		t.Fatalf("Expected second fetch to succeed, got %v", err)
	}
	if !cached {
		t.Error("Expected second fetch to hit")
	}
	if len(rows) != 1 || rows[0].Count != 120 {
		t.Errorf("Unexpected cached rows: %v", rows)
	}

	if computes != 1 {
		t.Errorf("Expected 1 compute, got %d", computes)
	}
}

func TestFetch_DistinctParamsComputeSeparately(t *testing.T) {
	c := New(time.Minute)
	computes := 0

	compute := func(_ context.Context) ([]genreRow, error) {
		computes++
		return nil, nil
	}

	_, _, _ = Fetch(context.Background(), c, "TopGenres", 10, compute)
	_, _, _ = Fetch(context.Background(), c, "TopGenres", 25, compute)

	if computes != 2 {
		t.Errorf("Expected one compute per limit, got %d", computes)
	}
}

func TestFetch_ErrorsNeverCached(t *testing.T) {
	c := New(time.Minute)
	computes := 0
	queryErr := errors.New("aggregation failed")

	compute := func(_ context.Context) ([]genreRow, error) {
		computes++
		if computes == 1 {
			return nil, queryErr
		}
		return []genreRow{{Genre: "comedy", Count: 7}}, nil
	}

	_, cached, err := Fetch(context.Background(), c, "TopGenres", 10, compute)
	if !errors.Is(err, queryErr) {
		t.Fatalf("Expected compute error, got %v", err)
	}
	if cached {
		t.Error("Expected failed fetch to report a miss")
	}

	// The failure must not poison the key: the retry recomputes
	rows, cached, err := Fetch(context.Background(), c, "TopGenres", 10, compute)
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if cached {
		t.Error("Expected retry to recompute, not hit")
	}
	if len(rows) != 1 || rows[0].Genre != "comedy" {
		t.Errorf("Unexpected rows: %v", rows)
	}

	if computes != 2 {
		t.Errorf("Expected 2 computes, got %d", computes)
	}
}

func TestFetch_ExpiredEntryRecomputes(t *testing.T) {
	c := New(10 * time.Millisecond)
	computes := 0

	compute := func(_ context.Context) (int64, error) {
		computes++
		return 23541, nil
	}

	_, _, _ = Fetch(context.Background(), c, "CountMovies", nil, compute)
	time.Sleep(20 * time.Millisecond)

	count, cached, err := Fetch(context.Background(), c, "CountMovies", nil, compute)
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	if cached {
		t.Error("Expected expired entry to recompute")
	}
	if count != 23541 {
		t.Errorf("Expected 23541, got %d", count)
	}
	if computes != 2 {
		t.Errorf("Expected 2 computes, got %d", computes)
	}
}

func TestFetch_WrongTypeTreatedAsMiss(t *testing.T) {
	c := New(time.Minute)

	// Seed the key with a value of a different type
	key := GenerateKey("CountMovies", nil)
	c.Set(key, "not a count")

	count, cached, err := Fetch(context.Background(), c, "CountMovies", nil, func(_ context.Context) (int64, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	if cached {
		t.Error("Expected type mismatch to count as a miss")
	}
	if count != 42 {
		t.Errorf("Expected 42, got %d", count)
	}

	// The mismatched entry was overwritten with the typed value
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Expected key to be present after overwrite")
	}
	if v, ok := got.(int64); !ok || v != 42 {
		t.Errorf("Expected cached int64 42, got %v", got)
	}
}

func TestFetch_ContextPassedToCompute(t *testing.T) {
	c := New(time.Minute)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	_, _, err := Fetch(ctx, c, "ListGenres", nil, func(got context.Context) ([]string, error) {
		if got.Value(ctxKey{}) != "marker" {
			t.Error("Expected caller context to reach compute")
		}
		return []string{"Drama"}, nil
	})
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
}
