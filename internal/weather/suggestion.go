// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package weather

import "github.com/tomtom215/trailhead/internal/recommend"

// Suggestion keys, resolved to display text by the i18n package.
const (
	SuggestionWarning     = "weather.suggestion.warning"
	SuggestionHot         = "weather.suggestion.hot"
	SuggestionUVHigh      = "weather.suggestion.uv-high"
	SuggestionCold        = "weather.suggestion.cold"
	SuggestionComfortable = "weather.suggestion.comfortable"
)

const (
	hotAboveC  = 25
	coldBelowC = 15
	highUV     = 8
)

// SuggestionKey derives the hiking advice key for a snapshot. A warning
// in force outranks everything else.
func SuggestionKey(s *recommend.WeatherSnapshot) string {
	switch {
	case s.Warning != "":
		return SuggestionWarning
	case s.TemperatureC > hotAboveC:
		return SuggestionHot
	case s.UVIndex >= highUV:
		return SuggestionUVHigh
	case s.TemperatureC < coldBelowC:
		return SuggestionCold
	default:
		return SuggestionComfortable
	}
}
