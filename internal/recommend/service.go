// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/trailhead/internal/logging"
	"github.com/tomtom215/trailhead/internal/metrics"
)

// DataProvider supplies the catalog and per-user inputs.
// This is typically implemented by the store layer.
type DataProvider interface {
	// GetTrails returns the candidate catalog in display order.
	GetTrails(ctx context.Context) ([]Trail, error)

	// GetPreference returns the user's preference, or nil if none is stored.
	GetPreference(ctx context.Context, userID string) (*UserPreference, error)

	// GetHistory returns the user's hike records.
	GetHistory(ctx context.Context, userID string) ([]HikeRecord, error)

	// GetFavorites returns the IDs of the user's favorite trails.
	GetFavorites(ctx context.Context, userID string) (map[string]bool, error)
}

// WeatherSource returns the current weather or an error when none is usable.
type WeatherSource interface {
	Current() (*WeatherSnapshot, error)
}

// ServiceRequest is a recommendation request for one user.
type ServiceRequest struct {
	UserID string

	// Now is the evaluation instant. Zero means the service clock.
	Now time.Time

	AvailableTime *time.Duration

	// Limit caps the number of returned items. Zero returns all.
	Limit int

	// Explain attaches the per-trail breakdown of every candidate.
	Explain bool
}

// Response is the result of a recommendation request.
type Response struct {
	// Items is the ranked list of recommended trails.
	Items []TrailRecommendation `json:"items"`

	// Breakdowns holds scoring detail for every candidate when requested.
	Breakdowns []Breakdown `json:"breakdowns,omitempty"`

	// TotalCandidates is the number of trails considered.
	TotalCandidates int `json:"total_candidates"`

	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID string `json:"request_id"`

	UserID string `json:"user_id"`

	// WeatherUsed reports whether a weather snapshot was scored.
	WeatherUsed bool `json:"weather_used"`

	Weather *WeatherSnapshot `json:"weather,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`

	LatencyMS int64 `json:"latency_ms"`
}

// Service wraps the engine with data loading, logging and metrics.
type Service struct {
	engine  *Engine
	data    DataProvider
	weather WeatherSource
	now     func() time.Time
	logger  zerolog.Logger
}

// NewService creates a recommendation service. weather may be nil.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewService(engine *Engine, data DataProvider, weather WeatherSource, logger zerolog.Logger) *Service {
	return &Service{
		engine:  engine,
		data:    data,
		weather: weather,
		now:     time.Now,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
}

// Engine returns the underlying engine.
func (s *Service) Engine() *Engine {
	return s.engine
}

// Recommend loads the user's inputs, ranks the catalog and records metrics.
func (s *Service) Recommend(ctx context.Context, req ServiceRequest) (resp *Response, err error) {
	start := time.Now()
	defer func() {
		var results int
		var reasons []string
		if resp != nil {
			results = len(resp.Items)
			for i := range resp.Items {
				for _, r := range resp.Items[i].Reasons {
					reasons = append(reasons, string(r))
				}
			}
		}
		metrics.RecordRecommendation(time.Since(start), results, reasons, err)
	}()

	input, err := s.buildRequest(ctx, req)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("user_id", req.UserID).Msg("Failed to load recommendation inputs")
		return nil, err
	}

	items := s.engine.Recommend(*input)
	total := len(items)
	if req.Limit > 0 && len(items) > req.Limit {
		items = items[:req.Limit]
	}

	resp = &Response{
		Items:           items,
		TotalCandidates: len(input.Trails),
		Metadata: ResponseMetadata{
			RequestID:   requestID(ctx),
			UserID:      req.UserID,
			WeatherUsed: input.Weather != nil,
			Weather:     input.Weather,
			GeneratedAt: input.Now,
		},
	}

	if req.Explain {
		resp.Breakdowns = make([]Breakdown, len(input.Trails))
		for i := range input.Trails {
			resp.Breakdowns[i] = s.engine.Score(&input.Trails[i], input)
		}
	}

	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()

	logging.Ctx(ctx).Debug().
		Str("user_id", req.UserID).
		Int("candidates", len(input.Trails)).
		Int("kept", total).
		Int("returned", len(items)).
		Bool("weather", input.Weather != nil).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("Recommendations generated")

	return resp, nil
}

// buildRequest gathers engine inputs. Missing weather is not an error; the
// weather factor is simply skipped.
func (s *Service) buildRequest(ctx context.Context, req ServiceRequest) (*Request, error) {
	trails, err := s.data.GetTrails(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trails: %w", err)
	}

	pref, err := s.data.GetPreference(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load preference: %w", err)
	}

	history, err := s.data.GetHistory(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	favorites, err := s.data.GetFavorites(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	for i := range trails {
		trails[i].Favorite = favorites[trails[i].ID]
	}

	now := req.Now
	if now.IsZero() {
		now = s.now()
	}

	in := &Request{
		Trails:        trails,
		Preference:    pref,
		Now:           now,
		AvailableTime: req.AvailableTime,
		History:       history,
	}

	if s.weather != nil {
		wx, err := s.weather.Current()
		if err != nil {
			s.logger.Debug().Err(err).Msg("Scoring without weather")
		} else {
			in.Weather = wx
		}
	}

	return in, nil
}

func requestID(ctx context.Context) string {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return logging.GenerateRequestID()
}
