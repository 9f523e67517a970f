// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package cache

import (
	"context"
)

// Fetch runs a query through the cache. On a hit it returns the cached
// table and true; on a miss it calls compute, stores the result, and
// returns it with false. Failed computes are returned as-is and never
// cached, so the next request retries the query.
//
// The key is derived from name and params, so callers must pass every
// value that changes the result. A cached entry of the wrong type is
// treated as a miss and overwritten.
func Fetch[T any](ctx context.Context, c *Cache, name string, params interface{}, compute func(context.Context) (T, error)) (T, bool, error) {
	key := GenerateKey(name, params)

	if cached, ok := c.Get(key); ok {
		if typed, ok := cached.(T); ok {
			return typed, true, nil
		}
	}

	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	c.Set(key, value)
	return value, false, nil
}
