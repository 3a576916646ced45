// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights holds the score deltas and thresholds of each factor.
	Weights FactorWeights `json:"weights"`

	// BaseScore is the starting score of every trail.
	// Default: 0.5.
	BaseScore float64 `json:"base_score"`

	// MinScore is the exclusive inclusion threshold.
	// Trails scoring exactly MinScore are dropped.
	// Default: 0.3.
	MinScore float64 `json:"min_score"`

	// CapSceneryBonus limits the scenery bonus to a single award per trail
	// no matter how many preferred categories match.
	// Default: false (one award per matching category).
	CapSceneryBonus bool `json:"cap_scenery_bonus"`
}

// FactorWeights defines the contribution of each factor branch.
// Penalties are stored as positive magnitudes and subtracted.
type FactorWeights struct {
	// Preference factor.
	DifficultyMatch   float64 `json:"difficulty_match"`
	FitnessLevelMatch float64 `json:"fitness_level_match"`
	DistanceMatch     float64 `json:"distance_match"`
	DurationMatch     float64 `json:"duration_match"`
	SceneryMatch      float64 `json:"scenery_match"`

	// Weather factor.
	TemperatureGood float64 `json:"temperature_good"`
	HotShade        float64 `json:"hot_shade"`
	ComfortMinC     float64 `json:"comfort_min_c"`
	ComfortMaxC     float64 `json:"comfort_max_c"`
	HighUVIndex     int     `json:"high_uv_index"`

	// Time-of-day factor.
	Sunrise float64 `json:"sunrise"`
	Sunset  float64 `json:"sunset"`

	// Available-time factor.
	TimeEnough       float64 `json:"time_enough"`
	TimeTight        float64 `json:"time_tight"`
	TimeShortPenalty float64 `json:"time_short_penalty"`

	// TightRatio is the fraction of the trail duration that still counts
	// as a tight fit.
	TightRatio float64 `json:"tight_ratio"`

	// History factor.
	NewTrail           float64 `json:"new_trail"`
	OftenCompleted     float64 `json:"often_completed"`
	OftenCompletedRate float64 `json:"often_completed_rate"`
	DistanceSimilar    float64 `json:"distance_similar"`

	// DistanceSimilarity is the relative tolerance around the mean
	// completed distance.
	DistanceSimilarity float64 `json:"distance_similarity"`

	// Diversity factor.
	DiversityBonus float64       `json:"diversity_bonus"`
	RepeatPenalty  float64       `json:"repeat_penalty"`
	RepeatWindow   time.Duration `json:"repeat_window"`
}

// DefaultWeights returns the production factor weights.
func DefaultWeights() FactorWeights {
	return FactorWeights{
		DifficultyMatch:   0.20,
		FitnessLevelMatch: 0.15,
		DistanceMatch:     0.15,
		DurationMatch:     0.15,
		SceneryMatch:      0.10,

		TemperatureGood: 0.10,
		HotShade:        0.05,
		ComfortMinC:     15,
		ComfortMaxC:     25,
		HighUVIndex:     8,

		Sunrise: 0.10,
		Sunset:  0.10,

		TimeEnough:       0.10,
		TimeTight:        0.05,
		TimeShortPenalty: 0.10,
		TightRatio:       0.7,

		NewTrail:           0.10,
		OftenCompleted:     0.15,
		OftenCompletedRate: 0.7,
		DistanceSimilar:    0.10,
		DistanceSimilarity: 0.3,

		DiversityBonus: 0.05,
		RepeatPenalty:  0.10,
		RepeatWindow:   thirtyDays,
	}
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights:         DefaultWeights(),
		BaseScore:       0.5,
		MinScore:        0.3,
		CapSceneryBonus: false,
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if c.BaseScore < 0 || c.BaseScore > 1 {
		return fmt.Errorf("base_score must be in [0, 1], got %f", c.BaseScore)
	}
	if c.MinScore < 0 || c.MinScore >= 1 {
		return fmt.Errorf("min_score must be in [0, 1), got %f", c.MinScore)
	}

	w := c.Weights
	magnitudes := map[string]float64{
		"difficulty_match":    w.DifficultyMatch,
		"fitness_level_match": w.FitnessLevelMatch,
		"distance_match":      w.DistanceMatch,
		"duration_match":      w.DurationMatch,
		"scenery_match":       w.SceneryMatch,
		"temperature_good":    w.TemperatureGood,
		"hot_shade":           w.HotShade,
		"sunrise":             w.Sunrise,
		"sunset":              w.Sunset,
		"time_enough":         w.TimeEnough,
		"time_tight":          w.TimeTight,
		"time_short_penalty":  w.TimeShortPenalty,
		"new_trail":           w.NewTrail,
		"often_completed":     w.OftenCompleted,
		"distance_similar":    w.DistanceSimilar,
		"diversity_bonus":     w.DiversityBonus,
		"repeat_penalty":      w.RepeatPenalty,
	}
	for name, v := range magnitudes {
		if v < 0 || v > 1 {
			return fmt.Errorf("weights.%s must be in [0, 1], got %f", name, v)
		}
	}

	if w.ComfortMinC > w.ComfortMaxC {
		return fmt.Errorf("weights.comfort_min_c must be <= comfort_max_c, got %f > %f", w.ComfortMinC, w.ComfortMaxC)
	}
	if w.HighUVIndex < 0 {
		return fmt.Errorf("weights.high_uv_index must be non-negative, got %d", w.HighUVIndex)
	}
	if w.TightRatio <= 0 || w.TightRatio > 1 {
		return fmt.Errorf("weights.tight_ratio must be in (0, 1], got %f", w.TightRatio)
	}
	if w.OftenCompletedRate < 0 || w.OftenCompletedRate > 1 {
		return fmt.Errorf("weights.often_completed_rate must be in [0, 1], got %f", w.OftenCompletedRate)
	}
	if w.DistanceSimilarity <= 0 {
		return fmt.Errorf("weights.distance_similarity must be positive, got %f", w.DistanceSimilarity)
	}
	if w.RepeatWindow <= 0 {
		return fmt.Errorf("weights.repeat_window must be positive, got %v", w.RepeatWindow)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All fields are value types.
	cp := *c
	return &cp
}
