// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package i18n

// fallbacks are compiled in so that a missing or broken dictionary entry
// degrades to short text in the requested language, never to another
// language and never to a raw key.
var fallbacks = map[string]map[string]string{
	English: {
		"reason.difficulty-match":         "Difficulty match",
		"reason.fitness-level-match":      "Fitness match",
		"reason.distance-match":           "Distance match",
		"reason.duration-match":           "Duration match",
		"reason.scenery-match":            "Scenery match",
		"reason.weather-temperature-good": "Good temperature",
		"reason.weather-hot-shade":        "Shaded route",
		"reason.weather-uv-high":          "High UV",
		"reason.time-sunrise":             "Sunrise view",
		"reason.time-sunset":              "Sunset view",
		"reason.time-enough":              "Enough time",
		"reason.time-tight":               "Tight on time",
		"reason.history-new-trail":        "New trail",
		"reason.history-often-completed":  "Often completed",
		"reason.history-distance-similar": "Usual distance",
		"weather.suggestion.comfortable":  "Good hiking weather",
		"weather.suggestion.hot":          "Hot weather",
		"weather.suggestion.cold":         "Cool weather",
		"weather.suggestion.uv-high":      "Strong sun",
		"weather.suggestion.warning":      "Weather warning",
	},
	TraditionalChinese: {
		"reason.difficulty-match":         "難度合適",
		"reason.fitness-level-match":      "體能合適",
		"reason.distance-match":           "距離合適",
		"reason.duration-match":           "時間合適",
		"reason.scenery-match":            "景色合適",
		"reason.weather-temperature-good": "氣溫宜人",
		"reason.weather-hot-shade":        "有遮蔭",
		"reason.weather-uv-high":          "紫外線強",
		"reason.time-sunrise":             "日出景點",
		"reason.time-sunset":              "日落景點",
		"reason.time-enough":              "時間充足",
		"reason.time-tight":               "時間較緊",
		"reason.history-new-trail":        "新路線",
		"reason.history-often-completed":  "經常完成",
		"reason.history-distance-similar": "慣常距離",
		"weather.suggestion.comfortable":  "天氣適宜",
		"weather.suggestion.hot":          "天氣炎熱",
		"weather.suggestion.cold":         "天氣清涼",
		"weather.suggestion.uv-high":      "陽光猛烈",
		"weather.suggestion.warning":      "天氣警告",
	},
}

// genericFallback is the last resort for keys missing from fallbacks.
var genericFallback = map[string]string{
	English:            "Recommended for you",
	TraditionalChinese: "為你推薦",
}
