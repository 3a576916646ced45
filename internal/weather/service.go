// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/trailhead/internal/cache"
	"github.com/tomtom215/trailhead/internal/recommend"
)

var (
	// ErrNoSnapshot means no successful fetch has happened yet, or the
	// last one has expired.
	ErrNoSnapshot = errors.New("no weather snapshot available")

	// ErrStale means the provider's own update time is too old to trust.
	ErrStale = errors.New("weather snapshot is stale")
)

const snapshotKey = "current"

// Fetcher retrieves a fresh snapshot. *Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context) (*recommend.WeatherSnapshot, error)
}

// ServiceConfig configures the refresher.
type ServiceConfig struct {
	// RefreshInterval is the time between fetches.
	RefreshInterval time.Duration

	// MaxStaleness is the oldest snapshot Current will hand out.
	MaxStaleness time.Duration
}

// Service keeps the latest weather snapshot and refreshes it periodically.
// It implements suture.Service.
type Service struct {
	fetcher Fetcher
	cfg     ServiceConfig
	latest  *cache.TTL[string, recommend.WeatherSnapshot]
	now     func() time.Time
	logger  zerolog.Logger
}

// NewService creates a weather service around fetcher.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewService(fetcher Fetcher, cfg ServiceConfig, logger zerolog.Logger) *Service {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 10 * time.Minute
	}
	if cfg.MaxStaleness <= 0 {
		cfg.MaxStaleness = 2 * time.Hour
	}
	return &Service{
		fetcher: fetcher,
		cfg:     cfg,
		latest:  cache.New[string, recommend.WeatherSnapshot](cfg.MaxStaleness),
		now:     time.Now,
		logger:  logger.With().Str("component", "weather").Logger(),
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.latest.WithClock(now)
	return s
}

// Refresh fetches and stores a new snapshot. On failure the previous
// snapshot stays in place until it expires.
func (s *Service) Refresh(ctx context.Context) error {
	snap, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("refresh weather: %w", err)
	}
	s.latest.Set(snapshotKey, *snap)
	s.logger.Debug().
		Str("location", snap.Location).
		Float64("temperature_c", snap.TemperatureC).
		Int("uv_index", snap.UVIndex).
		Time("updated_at", snap.UpdatedAt).
		Msg("Weather refreshed")
	return nil
}

// Current returns a copy of the latest snapshot, ErrNoSnapshot, or ErrStale.
func (s *Service) Current() (*recommend.WeatherSnapshot, error) {
	snap, ok := s.latest.Get(snapshotKey)
	if !ok {
		return nil, ErrNoSnapshot
	}
	if !snap.UpdatedAt.IsZero() && s.now().Sub(snap.UpdatedAt) > s.cfg.MaxStaleness {
		return nil, fmt.Errorf("%w: updated %s", ErrStale, snap.UpdatedAt.Format(time.RFC3339))
	}
	return &snap, nil
}

// Serve refreshes immediately and then on every interval until ctx is done.
// Fetch failures are logged and retried on the next tick.
func (s *Service) Serve(ctx context.Context) error {
	s.refreshAndLog(ctx)

	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refreshAndLog(ctx)
		}
	}
}

func (s *Service) refreshAndLog(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn().Err(err).Msg("Weather refresh failed")
	}
}

// String implements fmt.Stringer for supervisor logging.
func (s *Service) String() string {
	return "weather-refresher"
}
