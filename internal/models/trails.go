// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package models

import (
	"time"

	"github.com/tomtom215/trailhead/internal/recommend"
)

// TrailList is the catalog listing.
type TrailList struct {
	Trails []recommend.Trail `json:"trails"`
	Total  int               `json:"total"`
}

// RecommendationItem is one ranked trail with display text for its reasons.
type RecommendationItem struct {
	Trail        recommend.Trail `json:"trail"`
	Score        float64         `json:"score"`
	MatchPercent int             `json:"match_percent"`

	// Reasons are stable identifiers, in firing order.
	Reasons []string `json:"reasons"`

	// ReasonText is Reasons resolved in the response language.
	ReasonText []string `json:"reason_text"`
}

// RecommendationsResponse is the payload of the recommendations endpoint.
type RecommendationsResponse struct {
	UserID   string `json:"user_id"`
	Language string `json:"language"`

	Items []RecommendationItem `json:"items"`

	// TotalCandidates is the catalog size before filtering.
	TotalCandidates int `json:"total_candidates"`

	// EvaluatedAt is the instant scored, in the recommendation timezone.
	EvaluatedAt time.Time `json:"evaluated_at"`

	Weather *WeatherView `json:"weather,omitempty"`

	// Breakdowns is present only when explain=true.
	Breakdowns []recommend.Breakdown `json:"breakdowns,omitempty"`
}

// WeatherView is a weather snapshot with its suggestion resolved to text.
type WeatherView struct {
	recommend.WeatherSnapshot

	SuggestionText string `json:"suggestion_text"`

	// AgeSeconds is how old the snapshot is.
	AgeSeconds int64 `json:"age_seconds"`
}

// HikeRequest records a hike.
type HikeRequest struct {
	TrailID    string    `json:"trail_id" validate:"required,identifier"`
	StartedAt  time.Time `json:"started_at" validate:"required"`
	Completed  bool      `json:"completed"`
	DistanceKm float64   `json:"distance_km" validate:"gte=0,lte=200"`
}

// HikeList is a user's hike history, oldest first.
type HikeList struct {
	Hikes []recommend.HikeRecord `json:"hikes"`
	Total int                    `json:"total"`
}

// FavoriteResponse acknowledges a favorite toggle.
type FavoriteResponse struct {
	TrailID  string `json:"trail_id"`
	Favorite bool   `json:"favorite"`
}
