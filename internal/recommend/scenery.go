// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import "strings"

// sceneryKeywords maps each scenery category to the lowercase keywords that
// identify it in a trail's name or summary. Catalog text is bilingual, so
// both English and Traditional Chinese terms are listed.
var sceneryKeywords = map[Scenery][]string{
	ScenerySea:       {"sea", "beach", "bay", "coast", "island", "海", "灣", "沙灘"},
	SceneryMountain:  {"mountain", "peak", "ridge", "summit", "山", "峰", "嶺"},
	SceneryForest:    {"forest", "wood", "tree", "森林", "樹", "林"},
	SceneryReservoir: {"reservoir", "dam", "水塘", "水庫"},
	SceneryCity:      {"city", "skyline", "harbour", "harbor", "urban", "城市", "維港", "市區"},
	ScenerySunset:    {"sunset", "日落", "夕陽"},
	ScenerySunrise:   {"sunrise", "日出"},
}

// Marker tables used by the weather and time-of-day factors.
var (
	shadeKeywords   = []string{"sea", "water", "stream", "waterfall", "tree", "forest", "shade", "海", "水", "溪", "樹", "林"}
	sunriseKeywords = []string{"sunrise", "east", "日出", "東"}
	sunsetKeywords  = []string{"sunset", "west", "日落", "夕陽", "西"}
)

// SceneryKeywords returns the keyword list for a category.
// The returned slice must not be modified.
func SceneryKeywords(s Scenery) []string {
	return sceneryKeywords[s]
}

// MatchesScenery reports whether text mentions any keyword of the category.
// text must already be lowercased.
func MatchesScenery(s Scenery, text string) bool {
	return containsAny(text, sceneryKeywords[s])
}

// trailText returns the lowercased name and summary used for keyword tests.
func trailText(t *Trail) string {
	return strings.ToLower(t.Name + " " + t.Summary)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
