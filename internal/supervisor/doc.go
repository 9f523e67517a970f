// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

/*
Package supervisor provides process supervision for Reelboard using suture v4.

The package builds a small supervisor tree that owns the lifecycle of the
application's long-running services, with automatic restart on crash,
exponential backoff against restart storms, and graceful shutdown on context
cancellation.

# Overview

Reelboard has a single supervised concern, the HTTP server, so the tree is
shallow:

	RootSupervisor ("reelboard")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The intermediate api-layer supervisor keeps its own failure counter, so a
crash-looping HTTP server backs off without tripping the root.

# Usage

Basic setup in main.go:

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    log.Fatal(err)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)
	// ... wait for signal or supervisor exit ...
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
	    log.Printf("supervisor stopped: %v", err)
	}

# Configuration

TreeConfig controls restart behavior. Zero values take suture's
production defaults:

  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

Each service failure increments a counter that decays exponentially over
FailureDecay seconds; once the counter passes FailureThreshold, restarts are
delayed by FailureBackoff.

# What Is Not Supervised

The MongoDB client is not a suture service. The driver maintains its own
connection pool and reconnects internally; the readiness probe and its
circuit breaker (internal/database) report reachability instead. The query
cache is in-process state with lazy expiry and has no goroutines to manage.

Supervisor events (starts, failures, backoff) are logged through slog via the
sutureslog adapter; internal/logging bridges that into the application's
zerolog output.

# Debugging Shutdown

If shutdown hangs past the timeout, UnstoppedServiceReport names the services
that failed to stop. The usual cause is a handler ignoring context
cancellation or network I/O without a deadline.
*/
package supervisor
