// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

/*
Package api provides the HTTP REST API for Trailhead.

# Routes

All endpoints live under /api/v1 and answer with the models.APIResponse
envelope:

	GET    /api/v1/health/live
	GET    /api/v1/health/ready
	GET    /api/v1/trails[?user=ID&difficulty=easy]
	GET    /api/v1/trails/{trailID}[?user=ID]
	GET    /api/v1/users/{userID}/favorites
	PUT    /api/v1/users/{userID}/favorites/{trailID}
	DELETE /api/v1/users/{userID}/favorites/{trailID}
	GET    /api/v1/users/{userID}/preferences
	PUT    /api/v1/users/{userID}/preferences
	DELETE /api/v1/users/{userID}/preferences
	GET    /api/v1/users/{userID}/hikes[?limit=N]
	POST   /api/v1/users/{userID}/hikes
	GET    /api/v1/users/{userID}/recommendations
	GET    /api/v1/weather

Prometheus metrics are served at /metrics.

# Recommendations

The recommendations endpoint accepts:

	available_minutes  free time in minutes (0-1440)
	at                 RFC 3339 evaluation instant, default now
	lang               zh-Hant or en; falls back to Accept-Language
	explain            include per-trail score breakdowns
	limit              number of items, capped by recommend.max_limit

The evaluation instant is converted to the configured recommendation
timezone before scoring, so sunrise and sunset windows follow local time.
Reason identifiers are resolved to display text in the negotiated language
after ranking; the response carries both.

# Middleware

Every request passes through request ID assignment, RealIP, panic recovery
and CORS. API routes add per-IP rate limiting (go-chi/httprate), Prometheus
instrumentation and gzip compression.
*/
package api
