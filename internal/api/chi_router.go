// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/reelboard/reelboard/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
// This allows our existing middleware to work with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router sets up HTTP routes using Chi.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for the given handler and middleware factory.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// SetupChi configures all HTTP routes using Chi router.
//
// Route groups and their middleware:
//   - /api/v1/health, /api/v1/ready: permissive rate limit for probe polling
//   - /api/v1 data endpoints: default rate limit, gzip compression
//   - /api/v1/analytics/*: permissive rate limit sized for full dashboard loads
//   - /metrics: Prometheus scrape endpoint, no rate limit
//   - /swagger/*: generated API documentation UI
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID header plus logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.RequestLogger))

		// Health probes
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
			r.Get("/health", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		// Meta, movie listing, and KPI endpoints
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware(middleware.Compression))
			r.Use(router.chiMiddleware.RateLimit())
			r.Get("/genres", router.handler.Genres)
			r.Get("/years/bounds", router.handler.YearBounds)
			r.Get("/movies", router.handler.Movies)
			r.Get("/kpis", router.handler.KPIs)
		})

		// Chart analytics endpoints
		r.Route("/analytics", func(r chi.Router) {
			r.Use(chiMiddleware(middleware.Compression))
			r.Use(router.chiMiddleware.RateLimitCustom(RateLimitAnalytics))
			r.Get("/avg-rating-by-year", router.handler.AvgRatingByYear)
			r.Get("/movies-by-genre", router.handler.MoviesByGenre)
			r.Get("/rating-histogram", router.handler.RatingHistogram)
			r.Get("/top-genres", router.handler.TopGenres)
			r.Get("/top-directors", router.handler.TopDirectors)
			r.Get("/votes-vs-rating", router.handler.VotesVsRating)
			r.Get("/comments-over-time", router.handler.CommentsOverTime)
			r.Get("/comments-per-month", router.handler.CommentsPerMonth)
		})
	})

	// Prometheus metrics endpoint, scraped directly
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI backed by the generated docs package
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
