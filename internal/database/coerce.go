// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coercion helpers convert loosely typed BSON scalars into the column types
// the row structs declare. Fields whose pipeline carries a $type guard decode
// directly into Go numerics; these helpers cover the unguarded columns
// (raw listing values, $group outputs over dirty data) where a document may
// hold a string year or a missing rating. Failure to coerce is not an error:
// callers either null the column or drop the row, per query.

// asFloat converts a BSON numeric value to float64.
// Returns false for absent values and non-numeric types.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// asFloatPtr converts a BSON numeric value to a nullable float64 column
func asFloatPtr(v interface{}) *float64 {
	f, ok := asFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// asInt64 converts a BSON numeric value to int64, truncating doubles
func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// asTime converts a BSON temporal value to time.Time in UTC
func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case primitive.DateTime:
		return t.Time().UTC(), true
	default:
		return time.Time{}, false
	}
}

// orEmpty normalizes a nil string slice to an empty one so list columns
// serialize as [] rather than null
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
