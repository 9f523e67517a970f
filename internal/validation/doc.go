// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with user-friendly error messages. It integrates
// with the application's API error format for consistent error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to human-readable messages
//   - APIError conversion matching the application's error format
//
// # Quick Start
//
//	type FilterParams struct {
//	    YearMin   int     `validate:"gte=1800,lte=3000"`
//	    YearMax   int     `validate:"gtefield=YearMin"`
//	    MinRating float64 `validate:"gte=0,lte=10"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    params := parseFilterParams(r)
//
//	    if verr := validation.ValidateStruct(&params); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Common Validation Tags
//
// Numeric validations:
//   - gte=n: Greater than or equal to n
//   - lte=n: Less than or equal to n
//   - gtefield=F: Greater than or equal to field F
//   - min=n / max=n: Value bounds (length bounds for strings)
//   - oneof=a b c: Value must be one of the listed options
//
// See https://pkg.go.dev/github.com/go-playground/validator/v10 for the full set.
package validation
