// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/reelboard/reelboard/internal/config"
	"github.com/reelboard/reelboard/internal/logging"
)

// Collection names in the sample_mflix dataset
const (
	moviesCollection   = "movies"
	commentsCollection = "comments"
	usersCollection    = "users"
)

// defaultQueryTimeout bounds catalog queries that arrive without a deadline
const defaultQueryTimeout = 30 * time.Second

// DB wraps the MongoDB client and provides data access methods
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	movies   *mongo.Collection
	comments *mongo.Collection
	users    *mongo.Collection
	cfg      *config.DatabaseConfig
}

// New creates a new database connection and verifies it with a liveness ping.
//
// The server selection timeout comes from cfg.ConnectTimeout, so an
// unreachable deployment fails here rather than erroring on every later
// query. On ping failure the client is disconnected and a wrapped error is
// returned; the caller treats it as fatal. There is no retry.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectQuietly(client)
		return nil, fmt.Errorf("failed to ping MongoDB at startup: %w", err)
	}

	db := client.Database(cfg.Name)

	logging.Info().
		Str("database", cfg.Name).
		Dur("connect_timeout", cfg.ConnectTimeout).
		Msg("Connected to MongoDB")

	return &DB{
		client:   client,
		database: db,
		movies:   db.Collection(moviesCollection),
		comments: db.Collection(commentsCollection),
		users:    db.Collection(usersCollection),
		cfg:      cfg,
	}, nil
}

// Close disconnects from MongoDB, releasing all pooled connections
func (db *DB) Close() error {
	if db.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

// Ping checks if the store is reachable
func (db *DB) Ping(ctx context.Context) error {
	if db.client == nil {
		return fmt.Errorf("mongo client is nil")
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.client.Ping(ctx, readpref.Primary())
}

// Name returns the configured database name
func (db *DB) Name() string {
	return db.cfg.Name
}

// Database returns the underlying mongo database handle.
// Used by integration test infrastructure for seeding fixture documents.
func (db *DB) Database() *mongo.Database {
	return db.database
}

// ensureContext creates a context with a default timeout if none provided
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), defaultQueryTimeout)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, defaultQueryTimeout)
	}

	return ctx, func() {}
}

// disconnectQuietly disconnects a client and explicitly ignores any error.
// Used in error paths where the connection is already unusable.
func disconnectQuietly(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}
