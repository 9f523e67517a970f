// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reelboard/reelboard/internal/cache"
	"github.com/reelboard/reelboard/internal/config"
	"github.com/reelboard/reelboard/internal/models"
)

// Store is the query surface the handlers depend on. *database.DB satisfies
// it; tests substitute a mock so handler behavior can be exercised without a
// running MongoDB.
type Store interface {
	ListGenres(ctx context.Context) ([]string, error)
	YearBounds(ctx context.Context) (models.YearBounds, bool, error)
	FilteredMovies(ctx context.Context, f models.FilterParams) ([]models.MovieRow, error)
	AvgRatingByYear(ctx context.Context, f models.FilterParams) ([]models.AvgRatingRow, error)
	MoviesByGenre(ctx context.Context, f models.FilterParams) ([]models.GenreCount, error)
	RatingHistogram(ctx context.Context) ([]models.RatingBucket, error)
	TopGenres(ctx context.Context, limit int) ([]models.GenreCount, error)
	TopDirectors(ctx context.Context, limit int) ([]models.DirectorCount, error)
	VotesVsRating(ctx context.Context, limit int) ([]models.VotesRating, error)
	CommentsOverTime(ctx context.Context) ([]models.DayCount, error)
	CommentsPerMonth(ctx context.Context) ([]models.MonthCount, error)
	CountMovies(ctx context.Context) (int64, error)
	CountComments(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountDistinctDirectors(ctx context.Context) (int64, error)
}

// ReadinessProbe reports whether the backing store is reachable.
// *database.HealthChecker satisfies it.
type ReadinessProbe interface {
	Check(ctx context.Context) error
	State() string
}

// defaultCacheTTL is used when the configured cache TTL is missing or invalid.
const defaultCacheTTL = 60 * time.Second

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor (this file)
//   - handlers_meta.go: Genre list, year bounds, movie listing (3 methods)
//   - handlers_analytics.go: Chart endpoints (8 methods)
//   - handlers_kpis.go: Headline counters (1 method)
//   - handlers_health.go: Liveness and readiness probes (2 methods)
type Handler struct {
	store      Store
	config     *config.Config
	cache      *cache.Cache
	readiness  ReadinessProbe
	startTime  time.Time
	instanceID string
	version    string
}

// NewHandler creates a new API handler with all required dependencies.
//
// The handler initializes with a TTL cache for query results (TTL from
// config, 60s fallback), a process start time for uptime reporting, and a
// random instance ID that identifies this process in health responses.
//
// Example:
//
//	handler := api.NewHandler(db, cfg, database.NewHealthChecker(db), version)
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.MiddlewareConfigFromAPI(cfg.API)))
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(store Store, cfg *config.Config, readiness ReadinessProbe, version string) *Handler {
	ttl := defaultCacheTTL
	if cfg != nil && cfg.Cache.TTL > 0 {
		ttl = cfg.Cache.TTL
	}
	if version == "" {
		version = "dev"
	}

	return &Handler{
		store:      store,
		config:     cfg,
		cache:      cache.New(ttl),
		readiness:  readiness,
		startTime:  time.Now(),
		instanceID: uuid.New().String(),
		version:    version,
	}
}
