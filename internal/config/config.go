// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package config

import (
	"time"
	_ "time/tzdata" // RECOMMEND_TIMEZONE must resolve in minimal containers
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Store     StoreConfig     `koanf:"store"`
	Weather   WeatherConfig   `koanf:"weather"`
	Recommend RecommendConfig `koanf:"recommend"`
	I18n      I18nConfig      `koanf:"i18n"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// LoggingConfig holds logging settings for zerolog.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig locates the trail catalog.
type CatalogConfig struct {
	// Path is a JSON file of trails. Empty selects the embedded catalog.
	Path string `koanf:"path"`

	// Watch reloads the catalog when Path changes on disk.
	// Ignored for the embedded catalog.
	Watch bool `koanf:"watch"`
}

// WatchEnabled reports whether a file watcher should run.
func (c *CatalogConfig) WatchEnabled() bool {
	return c.Watch && c.Path != ""
}

// StoreConfig holds BadgerDB settings for per-user data.
type StoreConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	SyncWrites bool          `koanf:"sync_writes"`
	GCInterval time.Duration `koanf:"gc_interval"`

	// HistoryLimit is the number of most recent hikes fed to the engine.
	HistoryLimit int `koanf:"history_limit"`
}

// WeatherConfig holds settings for the live weather feed.
type WeatherConfig struct {
	Enabled         bool          `koanf:"enabled"`
	BaseURL         string        `koanf:"base_url"`
	Station         string        `koanf:"station"`
	Timeout         time.Duration `koanf:"timeout"`
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	MaxStaleness    time.Duration `koanf:"max_staleness"`

	RequestsPerMinute float64       `koanf:"requests_per_minute"`
	Burst             int           `koanf:"burst"`
	BreakerFailures   uint32        `koanf:"breaker_failures"`
	BreakerTimeout    time.Duration `koanf:"breaker_timeout"`
}

// RecommendConfig tunes the recommendation engine and endpoint.
// Factor weights keep their built-in values.
type RecommendConfig struct {
	BaseScore       float64       `koanf:"base_score"`
	MinScore        float64       `koanf:"min_score"`
	CapSceneryBonus bool          `koanf:"cap_scenery_bonus"`
	RepeatWindow    time.Duration `koanf:"repeat_window"`

	// Timezone is the IANA zone used to read the hour of day.
	Timezone string `koanf:"timezone"`

	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

// I18nConfig holds localization settings.
type I18nConfig struct {
	// DefaultLanguage is used when neither ?lang nor Accept-Language match.
	DefaultLanguage string `koanf:"default_language"`
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Location resolves the recommendation timezone.
// Validate guarantees the name loads.
func (c *RecommendConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
