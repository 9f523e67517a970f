// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

// Package main provides the Reelboard HTTP server
//
// Reelboard API serves the aggregation queries behind a movie analytics
// dashboard built on the MongoDB sample_mflix dataset.
//
// @title Reelboard API
// @version 1.0
// @description Analytics dashboard backend for the MongoDB sample_mflix movie dataset.
// @description
// @description ## Error Responses
// @description
// @description Chart and listing queries degrade rather than fail: when the underlying query errors, the endpoint returns HTTP 200 with status "degraded", an empty data table, and an error body with code QUERY_ERROR. Invalid filter parameters return HTTP 400 with code VALIDATION_ERROR.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Analytics routes allow 1000 requests per minute so a dashboard load can fire every panel at once.
// @description
// @description ## Caching
// @description
// @description Query results are cached in memory for 60 seconds per distinct parameter set. Cached responses set metadata.cached and omit metadata.query_time_ms.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/reelboard/reelboard/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness probes for liveness checks and load balancer gating
//
// @tag.name Meta
// @tag.description Dataset metadata endpoints for populating dashboard filter controls
//
// @tag.name Movies
// @tag.description Filtered movie listing endpoints backing the dashboard data table
//
// @tag.name Analytics
// @tag.description Aggregation endpoints backing the dashboard charts and KPI cards
package main
