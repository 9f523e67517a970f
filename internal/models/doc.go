// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

// Package models defines the shared data types for Reelboard: the filter
// parameters supplied by dashboards, the result-table row types produced by
// the query catalog, and the JSON envelope returned by every API endpoint.
//
// Row types are flat: each field is a scalar column (string, number, or
// timestamp) so that tables serialize directly into chart-friendly JSON.
// Numeric columns that tolerate absent or malformed source fields are
// pointers and serialize as null; everything else is guaranteed present by
// the query that produced it.
package models
