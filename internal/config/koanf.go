// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/trailhead/config.yaml",
	"/etc/trailhead/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Path:  "", // embedded catalog
			Watch: true,
		},
		Store: StoreConfig{
			Path:         "/data/trailhead",
			InMemory:     false,
			SyncWrites:   false,
			GCInterval:   10 * time.Minute,
			HistoryLimit: 200,
		},
		Weather: WeatherConfig{
			Enabled:           true,
			BaseURL:           "", // Observatory open data endpoint
			Station:           "", // Hong Kong Observatory
			Timeout:           10 * time.Second,
			RefreshInterval:   10 * time.Minute,
			MaxStaleness:      2 * time.Hour,
			RequestsPerMinute: 6,
			Burst:             2,
			BreakerFailures:   3,
			BreakerTimeout:    time.Minute,
		},
		Recommend: RecommendConfig{
			BaseScore:       0.5,
			MinScore:        0.3,
			CapSceneryBonus: false,
			RepeatWindow:    30 * 24 * time.Hour,
			Timezone:        "Asia/Hong_Kong",
			DefaultLimit:    10,
			MaxLimit:        50,
		},
		I18n: I18nConfig{
			DefaultLanguage: "zh-Hant",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	// HTTP_PORT -> server.port, WEATHER_STATION -> weather.station
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML lists are already slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_path":  "catalog.path",
	"catalog_watch": "catalog.watch",

	// Store
	"store_path":          "store.path",
	"store_in_memory":     "store.in_memory",
	"store_sync_writes":   "store.sync_writes",
	"store_gc_interval":   "store.gc_interval",
	"store_history_limit": "store.history_limit",

	// Weather
	"weather_enabled":             "weather.enabled",
	"weather_url":                 "weather.base_url",
	"weather_station":             "weather.station",
	"weather_timeout":             "weather.timeout",
	"weather_refresh_interval":    "weather.refresh_interval",
	"weather_max_staleness":       "weather.max_staleness",
	"weather_requests_per_minute": "weather.requests_per_minute",
	"weather_burst":               "weather.burst",
	"weather_breaker_failures":    "weather.breaker_failures",
	"weather_breaker_timeout":     "weather.breaker_timeout",

	// Recommendations
	"recommend_base_score":    "recommend.base_score",
	"recommend_min_score":     "recommend.min_score",
	"recommend_cap_scenery":   "recommend.cap_scenery_bonus",
	"recommend_repeat_window": "recommend.repeat_window",
	"recommend_timezone":      "recommend.timezone",
	"recommend_default_limit": "recommend.default_limit",
	"recommend_max_limit":     "recommend.max_limit",

	// Localization
	"default_language": "i18n.default_language",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - STORE_IN_MEMORY -> store.in_memory
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
//
// Unmapped keys return "" and are skipped, so unrelated environment
// variables never leak into the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
