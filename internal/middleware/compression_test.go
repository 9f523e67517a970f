// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompression_GzipsWhenAccepted(t *testing.T) {
	payload := strings.Repeat(`{"title":"The Movie","year":1999},`, 100)
	wrapped := Compression(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Expected Content-Encoding gzip, got %q", got)
	}

	gz, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("Expected gzip body: %v", err)
	}
	decoded, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("Failed to decompress body: %v", err)
	}
	if string(decoded) != payload {
		t.Error("Decompressed body does not match original payload")
	}
}

func TestCompression_SkipsWithoutAcceptEncoding(t *testing.T) {
	wrapped := Compression(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/kpis", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("Expected no Content-Encoding, got %q", got)
	}
	if rec.Body.String() != "plain" {
		t.Errorf("Expected plain body, got %q", rec.Body.String())
	}
}

func TestCompression_SkipsUpgradeRequests(t *testing.T) {
	wrapped := Compression(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("upgraded"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Upgrade", "websocket")
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("Expected upgrade request to bypass compression, got %q", got)
	}
}

func TestCompression_PreservesStatusCode(t *testing.T) {
	wrapped := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
