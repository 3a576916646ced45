// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

/*
Package main is the entry point for the Trailhead server.

Trailhead recommends hiking trails in Hong Kong. It ranks a trail catalog
against each user's stated preferences, hiking history, current weather,
time of day and available time, and explains every recommendation in
Traditional Chinese or English.

# Application Architecture

	RootSupervisor ("trailhead")
	├── DataSupervisor ("data-layer")
	│   ├── weather-refresher (HKO open data, circuit breaker + rate limit)
	│   ├── catalog-watcher   (reloads CATALOG_PATH on change)
	│   └── store-gc          (BadgerDB value log GC)
	└── APISupervisor ("api-layer")
	    └── http-server       (Chi router)

Component initialization order:

 1. Configuration: koanf v2 with defaults, optional YAML file, environment
 2. Logging: zerolog with JSON or console output
 3. Store: BadgerDB for preferences, hikes and favorites
 4. Catalog: embedded trail list or CATALOG_PATH
 5. Weather: HKO client and refresher (WEATHER_ENABLED)
 6. Recommendation engine and service
 7. Supervisor tree and HTTP server

# Configuration

See package config for the full list of environment variables. Common ones:

	HTTP_PORT=8080
	LOG_LEVEL=info
	STORE_PATH=/data/trailhead
	CATALOG_PATH=/etc/trailhead/trails.json
	WEATHER_ENABLED=true
	DEFAULT_LANGUAGE=zh-Hant

# Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP server drains for up
to ten seconds, background services stop, and the store is closed last.
*/
package main
