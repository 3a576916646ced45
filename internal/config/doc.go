// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

/*
Package config provides centralized configuration management for Trailhead.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, then config.yaml in the working
    directory, then /etc/trailhead/config.yaml
 3. Environment variables, mapped explicitly by envTransformFunc

Unknown environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Catalog:
  - CATALOG_PATH: Trail catalog JSON file (default: embedded catalog)
  - CATALOG_WATCH: Reload the file when it changes (default: true)

Store:
  - STORE_PATH: BadgerDB directory (default: /data/trailhead)
  - STORE_IN_MEMORY: Keep user data in RAM only (default: false)
  - STORE_SYNC_WRITES: fsync every write (default: false)
  - STORE_GC_INTERVAL: Value log GC interval (default: 10m)
  - STORE_HISTORY_LIMIT: Hike records read per recommendation (default: 200)

Weather:
  - WEATHER_ENABLED: Fetch live weather (default: true)
  - WEATHER_URL: Observatory current weather endpoint
  - WEATHER_STATION: Station used for temperature (default: Hong Kong Observatory)
  - WEATHER_TIMEOUT: HTTP timeout (default: 10s)
  - WEATHER_REFRESH_INTERVAL: Fetch interval (default: 10m)
  - WEATHER_MAX_STALENESS: Oldest usable snapshot (default: 2h)
  - WEATHER_REQUESTS_PER_MINUTE, WEATHER_BURST: Outbound rate limit
  - WEATHER_BREAKER_FAILURES, WEATHER_BREAKER_TIMEOUT: Circuit breaker

Recommendations:
  - RECOMMEND_BASE_SCORE: Starting score (default: 0.5)
  - RECOMMEND_MIN_SCORE: Exclusive inclusion threshold (default: 0.3)
  - RECOMMEND_CAP_SCENERY: Award the scenery bonus once (default: false)
  - RECOMMEND_REPEAT_WINDOW: Look-back for repeat penalty (default: 720h)
  - RECOMMEND_TIMEZONE: Zone used for time-of-day scoring (default: Asia/Hong_Kong)
  - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT: Result list size

Localization:
  - DEFAULT_LANGUAGE: Language when the request names none (default: zh-Hant)

Security:
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

Config is immutable after Load and safe for concurrent reads.
*/
package config
