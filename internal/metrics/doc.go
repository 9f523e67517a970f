// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the application using the Prometheus client library,
exposing metrics for monitoring aggregation performance, cache efficiency,
API throughput and circuit breaker health.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

MongoDB Query Metrics:
  - mongo_query_duration_seconds: Aggregation pipeline execution time (histogram)
    Labels: operation, collection
  - mongo_query_errors_total: Failed aggregations (counter)
    Labels: operation, collection, error_type

Query Cache Metrics:
  - query_cache_hits_total: Cache hits (counter)
  - query_cache_misses_total: Cache misses (counter)
  - query_cache_evictions_total: Expired entries evicted (counter)
  - query_cache_entries: Current number of cached results (gauge)

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Request outcomes (counter)
    Labels: name, result
  - circuit_breaker_state_transitions_total: State changes (counter)
    Labels: name, from_state, to_state

System Metrics:
  - app_info: Version and build information (gauge)
    Labels: version, go_version
  - app_uptime_seconds: Application uptime (gauge)

# Usage Example

	import "github.com/reelboard/reelboard/internal/metrics"

	start := time.Now()
	err := runAggregation(ctx)
	metrics.RecordQuery("avg_rating_by_year", "movies", time.Since(start), err)

Example PromQL queries:

	# Cache hit rate
	rate(query_cache_hits_total[5m]) / (rate(query_cache_hits_total[5m]) + rate(query_cache_misses_total[5m]))

	# API p95 latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))

	# Aggregation error rate by operation
	rate(mongo_query_errors_total[5m])

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

To prevent high cardinality issues, operation and endpoint labels come from a
fixed set of query catalog names and routes, and error types are truncated.
*/
package metrics
