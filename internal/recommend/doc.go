// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

// Package recommend implements the rule-based trail recommendation engine.
//
// # Scoring
//
// Every trail starts at a base score of 0.5. Six factors are then applied in
// a fixed order, each adding a bounded signed delta and zero or more reason
// identifiers:
//
//   - Preference: difficulty or fitness level, distance, duration, scenery
//   - Weather: comfortable temperature, shade on hot days, high UV warning
//   - Time of day: sunrise and sunset routes
//   - Available time: whether the trail fits the caller's budget
//   - History: novelty, completion habits, typical distance
//   - Diversity: penalize recent repeats
//
// The sum is clamped to [0, 1]. Trails scoring strictly above the threshold
// (0.3 by default) are returned ordered by score descending. Ties keep the
// catalog order.
//
// # Purity
//
// Engine never reads the clock, the network, or the active UI language.
// Reasons are stable identifiers; localization happens after ranking in the
// API layer. Service wraps the engine with data loading, logging and metrics.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	recs := engine.Recommend(recommend.Request{
//	    Trails:     trails,
//	    Preference: pref,
//	    Now:        time.Now(),
//	})
package recommend
