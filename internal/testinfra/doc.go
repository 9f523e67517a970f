// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

// Package testinfra provides container infrastructure for integration tests.
//
// The package uses testcontainers-go to run a real MongoDB instance, so
// integration tests exercise the actual aggregation pipelines instead of a
// mocked store.
//
// # MongoDB Container
//
//	func TestQueries(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongo.Container)
//
//	    db, err := database.New(ctx, &config.DatabaseConfig{
//	        URI:  mongo.URI,
//	        Name: mongo.Database,
//	    })
//	    // seed collections through the driver, then run queries
//	}
//
// Tests are tagged "integration" and skip gracefully when Docker is not
// available, so the default unit test run never needs a daemon. The first
// run downloads the mongo image; later runs use the local cache.
package testinfra
