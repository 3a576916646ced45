// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

/*
Package models defines the request and response shapes of the Trailhead
HTTP API.

Domain types (trails, preferences, hike records, scores) live in the
recommend package; this package wraps them for transport:

  - APIResponse: Standard envelope for every endpoint
  - RecommendationsResponse: Ranked, localized recommendations
  - WeatherView: Weather snapshot with localized suggestion text
  - HikeRequest / FavoriteRequest: Write payloads, validated with
    go-playground/validator tags
*/
package models
