// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"store path required", func(c *Config) { c.Store.Path = "" }, "STORE_PATH"},
		{"in memory store needs no path", func(c *Config) { c.Store.Path = ""; c.Store.InMemory = true }, ""},
		{"gc too frequent", func(c *Config) { c.Store.GCInterval = time.Second }, "STORE_GC_INTERVAL"},
		{"history limit", func(c *Config) { c.Store.HistoryLimit = 0 }, "STORE_HISTORY_LIMIT"},
		{"weather url scheme", func(c *Config) { c.Weather.BaseURL = "ftp://x" }, "WEATHER_URL"},
		{"weather refresh", func(c *Config) { c.Weather.RefreshInterval = time.Second }, "WEATHER_REFRESH_INTERVAL"},
		{"weather staleness", func(c *Config) { c.Weather.MaxStaleness = time.Minute }, "WEATHER_MAX_STALENESS"},
		{"weather rate", func(c *Config) { c.Weather.Burst = 0 }, "WEATHER_BURST"},
		{"weather breaker", func(c *Config) { c.Weather.BreakerFailures = 0 }, "WEATHER_BREAKER"},
		{"disabled weather skips checks", func(c *Config) { c.Weather.Enabled = false; c.Weather.Burst = 0 }, ""},
		{"base score", func(c *Config) { c.Recommend.BaseScore = 2 }, "RECOMMEND_BASE_SCORE"},
		{"min score", func(c *Config) { c.Recommend.MinScore = 1 }, "RECOMMEND_MIN_SCORE"},
		{"repeat window", func(c *Config) { c.Recommend.RepeatWindow = 0 }, "RECOMMEND_REPEAT_WINDOW"},
		{"timezone", func(c *Config) { c.Recommend.Timezone = "Mars/Olympus" }, "RECOMMEND_TIMEZONE"},
		{"limits", func(c *Config) { c.Recommend.MaxLimit = 5 }, "RECOMMEND_DEFAULT_LIMIT"},
		{"language", func(c *Config) { c.I18n.DefaultLanguage = "fr" }, "DEFAULT_LANGUAGE"},
		{"no cors origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{
			"explicit cors in production",
			func(c *Config) {
				c.Server.Environment = "production"
				c.Security.CORSOrigins = []string{"https://hike.example"}
			},
			"",
		},
		{"rate limit requests", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled", func(c *Config) { c.Security.RateLimitDisabled = true; c.Security.RateLimitReqs = 0 }, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvironmentMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env        string
		production bool
		dev        bool
	}{
		{"", false, true},
		{"development", false, true},
		{"dev", false, true},
		{"production", true, false},
		{"PROD", true, false},
		{"staging", false, false},
	}
	for _, tt := range tests {
		cfg := &Config{Server: ServerConfig{Environment: tt.env}}
		if cfg.IsProduction() != tt.production || cfg.IsDevelopment() != tt.dev {
			t.Errorf("env %q: production=%v dev=%v", tt.env, cfg.IsProduction(), cfg.IsDevelopment())
		}
	}
}
