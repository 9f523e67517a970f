// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

/*
Package services provides suture.Service wrappers for Reelboard components.

Each wrapper translates a component's native lifecycle into suture's
context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return behavior matters to the supervisor: returning an error requests a
restart, returning nil stops the service for good, and a canceled context
means shutdown was requested and Serve should return promptly.

HTTPServerService is the only wrapper today. It adapts *http.Server's
blocking ListenAndServe to Serve, draining connections via Shutdown with a
configurable timeout when the context is canceled.
*/
package services
