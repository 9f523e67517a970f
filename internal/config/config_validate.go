// Reelboard - Movie Analytics Dashboard Backend
// Copyright 2026 Reelboard Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelboard/reelboard

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateAnalytics(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDatabase validates MongoDB connection configuration
func (c *Config) validateDatabase() error {
	if err := c.validateMongoURI(); err != nil {
		return err
	}
	if err := c.validateMongoName(); err != nil {
		return err
	}
	return c.validateConnectTimeout()
}

// validateMongoURI validates the MongoDB connection string
func (c *Config) validateMongoURI() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if !strings.HasPrefix(c.Database.URI, "mongodb://") && !strings.HasPrefix(c.Database.URI, "mongodb+srv://") {
		return fmt.Errorf("MONGO_URI must start with mongodb:// or mongodb+srv://")
	}
	return nil
}

// validateMongoName validates the database name
func (c *Config) validateMongoName() error {
	if c.Database.Name == "" {
		return fmt.Errorf("MONGO_DB is required")
	}
	return nil
}

// Connect timeout bounds
const (
	minConnectTimeout = time.Second
	maxConnectTimeout = 5 * time.Minute
)

// validateConnectTimeout validates the server selection timeout
func (c *Config) validateConnectTimeout() error {
	if c.Database.ConnectTimeout < minConnectTimeout || c.Database.ConnectTimeout > maxConnectTimeout {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be between %v and %v", minConnectTimeout, maxConnectTimeout)
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Cache TTL bounds
const (
	minCacheTTL = time.Second
	maxCacheTTL = 24 * time.Hour
)

// validateCache validates cache configuration
func (c *Config) validateCache() error {
	if c.Cache.TTL < minCacheTTL || c.Cache.TTL > maxCacheTTL {
		return fmt.Errorf("CACHE_TTL must be between %v and %v", minCacheTTL, maxCacheTTL)
	}
	return nil
}

// validateAnalytics validates the fallback year bounds
func (c *Config) validateAnalytics() error {
	if c.Analytics.DefaultYearMin < 1800 || c.Analytics.DefaultYearMin > 3000 {
		return fmt.Errorf("DEFAULT_YEAR_MIN must be between 1800 and 3000")
	}
	if c.Analytics.DefaultYearMax < 1800 || c.Analytics.DefaultYearMax > 3000 {
		return fmt.Errorf("DEFAULT_YEAR_MAX must be between 1800 and 3000")
	}
	if c.Analytics.DefaultYearMin > c.Analytics.DefaultYearMax {
		return fmt.Errorf("DEFAULT_YEAR_MIN must not exceed DEFAULT_YEAR_MAX")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
// Ensures rate limit values are within sensible ranges to prevent
// misconfiguration that could lead to ineffective protection.
func (c *Config) validateRateLimits() error {
	if c.API.RateLimitDisabled {
		return nil
	}

	if c.API.RateLimitRequests < minRateLimitRequests || c.API.RateLimitRequests > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.API.RateLimitWindow < minRateLimitWindow || c.API.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
