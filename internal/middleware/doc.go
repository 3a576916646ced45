// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

/*
Package middleware provides HTTP middleware shared by the Trailhead API.

Middleware use the http.HandlerFunc form and are adapted to chi with a small
wrapper in the api package:

  - RequestID: Assigns or propagates X-Request-ID and stores a request-scoped
    logger in the context
  - PrometheusMetrics: Request count, latency and in-flight gauge, labeled by
    chi route pattern so path parameters do not explode cardinality
  - Compression: gzip for clients that accept it

Order matters: RequestID first so every later log line carries the ID.

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))
*/
package middleware
