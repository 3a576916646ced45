// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/trailhead/internal/i18n"
	"github.com/tomtom215/trailhead/internal/logging"
)

// Validate checks that the configuration is complete and within bounds
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateStore,
		c.validateWeather,
		c.validateRecommend,
		c.validateI18n,
		c.validateSecurity,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
}

func (c *Config) validateStore() error {
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required unless STORE_IN_MEMORY is set")
	}
	if c.Store.GCInterval < time.Minute {
		return fmt.Errorf("STORE_GC_INTERVAL must be at least 1m")
	}
	if c.Store.HistoryLimit < 1 {
		return fmt.Errorf("STORE_HISTORY_LIMIT must be positive")
	}
	return nil
}

func (c *Config) validateWeather() error {
	if !c.Weather.Enabled {
		return nil
	}
	w := c.Weather
	if w.BaseURL != "" && !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return fmt.Errorf("WEATHER_URL must start with http:// or https://")
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive")
	}
	if w.RefreshInterval < time.Minute {
		return fmt.Errorf("WEATHER_REFRESH_INTERVAL must be at least 1m")
	}
	if w.MaxStaleness < w.RefreshInterval {
		return fmt.Errorf("WEATHER_MAX_STALENESS must not be shorter than WEATHER_REFRESH_INTERVAL")
	}
	if w.RequestsPerMinute <= 0 || w.Burst < 1 {
		return fmt.Errorf("WEATHER_REQUESTS_PER_MINUTE and WEATHER_BURST must be positive")
	}
	if w.BreakerFailures == 0 || w.BreakerTimeout <= 0 {
		return fmt.Errorf("WEATHER_BREAKER_FAILURES and WEATHER_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.BaseScore < 0 || r.BaseScore > 1 {
		return fmt.Errorf("RECOMMEND_BASE_SCORE must be between 0 and 1")
	}
	if r.MinScore < 0 || r.MinScore >= 1 {
		return fmt.Errorf("RECOMMEND_MIN_SCORE must be in [0, 1)")
	}
	if r.RepeatWindow <= 0 {
		return fmt.Errorf("RECOMMEND_REPEAT_WINDOW must be positive")
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return fmt.Errorf("RECOMMEND_TIMEZONE %q is not a known zone: %w", r.Timezone, err)
	}
	if r.DefaultLimit < 1 || r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be positive and not above RECOMMEND_MAX_LIMIT")
	}
	return nil
}

func (c *Config) validateI18n() error {
	for _, lang := range i18n.Supported() {
		if c.I18n.DefaultLanguage == lang {
			return nil
		}
	}
	return fmt.Errorf("DEFAULT_LANGUAGE must be one of: %s", strings.Join(i18n.Supported(), ", "))
}

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed when ENVIRONMENT=production; " +
			"set specific origins: CORS_ORIGINS=https://yourdomain.com")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}
