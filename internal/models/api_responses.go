// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "TRAIL_NOT_FOUND",
//	    "message": "Trail not found"
//	  },
//	  "metadata": {"timestamp": "2026-03-14T12:00:00Z", "request_id": "..."}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - TRAIL_NOT_FOUND: Unknown trail identifier
//   - NOT_FOUND: Resource doesn't exist
//   - STORE_ERROR: User data store failure
//   - WEATHER_UNAVAILABLE: No usable weather snapshot
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthResponse reports liveness or readiness.
type HealthResponse struct {
	Status string `json:"status"` // "ok" or "degraded"

	// Checks maps a dependency to "ok" or its error text.
	Checks map[string]string `json:"checks,omitempty"`

	Trails int `json:"trails"`

	WeatherAvailable bool `json:"weather_available"`

	Uptime string `json:"uptime"`
}
