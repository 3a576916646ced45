// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import (
	"time"
)

// Difficulty classifies how demanding a trail is.
type Difficulty string

const (
	// DifficultyEasy is suitable for beginners and families.
	DifficultyEasy Difficulty = "easy"
	// DifficultyModerate requires some hiking experience.
	DifficultyModerate Difficulty = "moderate"
	// DifficultyChallenging involves sustained climbs or rough terrain.
	DifficultyChallenging Difficulty = "challenging"
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
		return true
	default:
		return false
	}
}

// FitnessLevel is the user's self-assessed hiking fitness.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// fitnessDifficulties maps a fitness level to the difficulties recommended for it.
var fitnessDifficulties = map[FitnessLevel][]Difficulty{
	FitnessBeginner:     {DifficultyEasy},
	FitnessIntermediate: {DifficultyEasy, DifficultyModerate},
	FitnessAdvanced:     {DifficultyModerate, DifficultyChallenging},
}

// RecommendedDifficulties returns the difficulties suited to a fitness level.
// Unknown levels yield nil.
func RecommendedDifficulties(level FitnessLevel) []Difficulty {
	return fitnessDifficulties[level]
}

// Scenery is a category of landscape a user may prefer.
type Scenery string

const (
	ScenerySea       Scenery = "sea"
	SceneryMountain  Scenery = "mountain"
	SceneryForest    Scenery = "forest"
	SceneryReservoir Scenery = "reservoir"
	SceneryCity      Scenery = "city"
	ScenerySunset    Scenery = "sunset"
	ScenerySunrise   Scenery = "sunrise"
)

// AllScenery lists every scenery category in display order.
var AllScenery = []Scenery{
	ScenerySea, SceneryMountain, SceneryForest, SceneryReservoir,
	SceneryCity, ScenerySunset, ScenerySunrise,
}

// Trail is a catalog entry describing a hiking route and its static metrics.
type Trail struct {
	// ID is stable for the lifetime of the catalog.
	ID string `json:"id" validate:"required"`

	// Name is the display name.
	Name string `json:"name" validate:"required"`

	// Summary is free-text description used for keyword matching.
	Summary string `json:"summary"`

	// District is the administrative area the trail starts in.
	District string `json:"district"`

	// LengthKm is the route length in kilometers.
	LengthKm float64 `json:"length_km" validate:"gte=0"`

	// ElevationGainM is the total ascent in meters.
	ElevationGainM float64 `json:"elevation_gain_m" validate:"gte=0"`

	// DurationMinutes is the estimated walking time.
	DurationMinutes int `json:"duration_minutes" validate:"gte=0"`

	// Difficulty is one of easy, moderate or challenging.
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=easy moderate challenging"`

	// Favorite is user-scoped and overlaid from the user store.
	Favorite bool `json:"favorite"`
}

// Duration returns the estimated walking time as a time.Duration.
func (t *Trail) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}

// WeatherSnapshot is a point-in-time weather reading.
type WeatherSnapshot struct {
	Location     string    `json:"location"`
	TemperatureC float64   `json:"temperature_c"`
	HumidityPct  int       `json:"humidity_pct"`
	UVIndex      int       `json:"uv_index"`
	Warning      string    `json:"warning,omitempty"`
	Suggestion   string    `json:"suggestion"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DistanceRange is an inclusive range of trail lengths in kilometers.
type DistanceRange struct {
	MinKm float64 `json:"min_km" validate:"gte=0"`
	MaxKm float64 `json:"max_km" validate:"gtefield=MinKm"`
}

// Contains reports whether km falls inside the range, bounds included.
func (r DistanceRange) Contains(km float64) bool {
	return km >= r.MinKm && km <= r.MaxKm
}

// DurationRange is an inclusive range of walking times in minutes.
type DurationRange struct {
	MinMinutes int `json:"min_minutes" validate:"gte=0"`
	MaxMinutes int `json:"max_minutes" validate:"gtefield=MinMinutes"`
}

// Contains reports whether minutes falls inside the range, bounds included.
func (r DurationRange) Contains(minutes int) bool {
	return minutes >= r.MinMinutes && minutes <= r.MaxMinutes
}

// UserPreference holds a user's stated hiking preferences.
// Every field is optional.
type UserPreference struct {
	// PreferredDifficulty, when nil, defers to FitnessLevel.
	PreferredDifficulty *Difficulty `json:"preferred_difficulty,omitempty" validate:"omitempty,oneof=easy moderate challenging"`

	FitnessLevel FitnessLevel `json:"fitness_level" validate:"omitempty,oneof=beginner intermediate advanced"`

	Distance *DistanceRange `json:"distance,omitempty"`

	Duration *DurationRange `json:"duration,omitempty"`

	Scenery []Scenery `json:"scenery,omitempty" validate:"omitempty,dive,oneof=sea mountain forest reservoir city sunset sunrise"`
}

// HikeRecord is a completed or attempted hike used as behavioral signal.
type HikeRecord struct {
	TrailID string `json:"trail_id" validate:"required"`

	// TrailName allows fuzzy matching when TrailID is stale.
	TrailName string `json:"trail_name,omitempty"`

	StartedAt time.Time `json:"started_at" validate:"required"`

	Completed bool `json:"completed"`

	DistanceKm float64 `json:"distance_km" validate:"gte=0"`
}

// Reason identifies why a factor fired. It is resolved to display text by
// the i18n package; the engine never produces user-facing strings.
type Reason string

const (
	ReasonDifficultyMatch        Reason = "difficulty-match"
	ReasonFitnessLevelMatch      Reason = "fitness-level-match"
	ReasonDistanceMatch          Reason = "distance-match"
	ReasonDurationMatch          Reason = "duration-match"
	ReasonSceneryMatch           Reason = "scenery-match"
	ReasonWeatherTemperatureGood Reason = "weather-temperature-good"
	ReasonWeatherHotShade        Reason = "weather-hot-shade"
	ReasonWeatherUVHigh          Reason = "weather-uv-high"
	ReasonTimeSunrise            Reason = "time-sunrise"
	ReasonTimeSunset             Reason = "time-sunset"
	ReasonTimeEnough             Reason = "time-enough"
	ReasonTimeTight              Reason = "time-tight"
	ReasonHistoryNewTrail        Reason = "history-new-trail"
	ReasonHistoryOftenCompleted  Reason = "history-often-completed"
	ReasonHistoryDistanceSimilar Reason = "history-distance-similar"
)

// AllReasons lists every reason identifier the engine can emit.
var AllReasons = []Reason{
	ReasonDifficultyMatch, ReasonFitnessLevelMatch, ReasonDistanceMatch,
	ReasonDurationMatch, ReasonSceneryMatch, ReasonWeatherTemperatureGood,
	ReasonWeatherHotShade, ReasonWeatherUVHigh, ReasonTimeSunrise,
	ReasonTimeSunset, ReasonTimeEnough, ReasonTimeTight,
	ReasonHistoryNewTrail, ReasonHistoryOftenCompleted, ReasonHistoryDistanceSimilar,
}

// TrailRecommendation is one ranked result of a recommendation pass.
type TrailRecommendation struct {
	// ID mirrors Trail.ID.
	ID string `json:"id"`

	Trail Trail `json:"trail"`

	// Score is the clamped aggregate in [0, 1].
	Score float64 `json:"score"`

	// Reasons are in the order the contributing factors fired.
	Reasons []Reason `json:"reasons"`

	// MatchPercent is min(round(Score*100), 100).
	MatchPercent int `json:"match_percent"`
}

// Factor names one scored dimension.
type Factor string

const (
	FactorPreference    Factor = "preference"
	FactorWeather       Factor = "weather"
	FactorTimeOfDay     Factor = "time_of_day"
	FactorAvailableTime Factor = "available_time"
	FactorHistory       Factor = "history"
	FactorDiversity     Factor = "diversity"
)

// FactorOrder is the fixed order in which factors are applied.
var FactorOrder = []Factor{
	FactorPreference, FactorWeather, FactorTimeOfDay,
	FactorAvailableTime, FactorHistory, FactorDiversity,
}

// Breakdown is the pre-filter scoring detail for a single trail.
type Breakdown struct {
	TrailID string `json:"trail_id"`

	// Raw is 0.5 plus the sum of all deltas, before clamping.
	Raw float64 `json:"raw"`

	// Score is Raw clamped to [0, 1].
	Score float64 `json:"score"`

	// Deltas holds each factor's contribution. Skipped factors are absent.
	Deltas map[Factor]float64 `json:"deltas"`

	Reasons []Reason `json:"reasons"`

	// Kept reports whether Score clears the inclusion threshold.
	Kept bool `json:"kept"`
}
