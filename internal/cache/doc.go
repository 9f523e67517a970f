// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

/*
Package cache provides thread-safe in-memory caching with TTL support.

This package implements the query result cache for dashboard endpoints,
reducing MongoDB aggregation load and keeping repeated dashboard renders
fast while the underlying collections change slowly.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live (TTL) expiration checked lazily on Get
  - Simple key-value storage with any value type (interface{})
  - Deterministic cache keys derived from query name and parameters
  - Hit/miss/eviction statistics for monitoring

There is no background cleanup goroutine. An expired entry stays in the
map until the next Get for its key removes it, or a Set overwrites it.
The key space is bounded by the number of distinct query shapes the
dashboard issues, so expired entries never accumulate meaningfully.

# Key Generation

Cache keys are built from the query name and its parameter struct:

	key := cache.GenerateKey("FilteredMovies", filter)
	// => "FilteredMovies:3f7a9c..."

GenerateKey serializes the parameters to JSON and hashes them with
SHA-256, so two requests with identical parameters always map to the
same key and any parameter change maps to a different key.

# Usage Example

Basic caching:

	import "github.com/reelboard/reelboard/internal/cache"

	// Create cache with 60-second default TTL
	c := cache.New(60 * time.Second)

	// Store value
	c.Set("genres:all", genres)

	// Retrieve value
	if value, ok := c.Get("genres:all"); ok {
	    genres := value.([]string)
	    // Use cached genres
	}

	// Delete specific key
	c.Delete("genres:all")

	// Clear entire cache
	c.Clear()

API handler caching pattern:

	cacheKey := cache.GenerateKey("AvgRatingByYear", filter)
	if cached, found := h.cache.Get(cacheKey); found {
	    if rows, ok := cached.([]models.AvgRatingRow); ok {
	        respondJSON(w, http.StatusOK, successResponse(rows, 0, true))
	        return
	    }
	}

	rows, err := h.store.AvgRatingByYear(r.Context(), filter)
	if err != nil {
	    respondDegraded(w, "AvgRatingByYear", err)
	    return
	}
	h.cache.Set(cacheKey, rows)

Failed queries are never cached: the degraded path returns before Set,
so the next request retries the database.

# Statistics

The cache tracks hits, misses, evictions, and the current entry count.
Counters are mirrored to Prometheus (query_cache_hits_total,
query_cache_misses_total, query_cache_evictions_total,
query_cache_entries) so dashboards can derive the hit rate:

	stats := c.GetStats()
	log.Printf("cache: %d keys, %.2f%% hit rate", stats.TotalKeys, c.HitRate())

# Thread Safety

All operations are safe for concurrent use. Reads take a shared lock;
Set, Delete, Clear, and expired-entry removal take an exclusive lock.
Concurrent misses for the same key may each run the underlying query
once; results are identical and the last write wins, so no coordination
is needed.
*/
package cache
