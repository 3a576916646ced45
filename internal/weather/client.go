// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

// Package weather fetches current conditions from the Hong Kong Observatory
// open data API and keeps the latest snapshot for the recommendation engine.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/trailhead/internal/metrics"
	"github.com/tomtom215/trailhead/internal/recommend"
)

const (
	// DefaultBaseURL is the HKO open data weather endpoint.
	DefaultBaseURL = "https://data.weather.gov.hk/weatherAPI/opendata/weather.php"

	// DefaultStation is the reference station for temperature readings.
	DefaultStation = "Hong Kong Observatory"

	maxBodyBytes = 1 << 20
)

// ErrCircuitOpen is returned while the circuit breaker rejects calls.
var ErrCircuitOpen = errors.New("weather provider circuit open")

// ClientConfig configures the HKO client.
type ClientConfig struct {
	BaseURL string
	Station string
	Timeout time.Duration

	// RequestsPerMinute caps outbound calls. Burst allows short spikes.
	RequestsPerMinute float64
	Burst             int

	// BreakerFailures consecutive failures open the circuit for BreakerTimeout.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// DefaultClientConfig returns production defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:           DefaultBaseURL,
		Station:           DefaultStation,
		Timeout:           10 * time.Second,
		RequestsPerMinute: 6,
		Burst:             2,
		BreakerFailures:   3,
		BreakerTimeout:    60 * time.Second,
	}
}

// Client fetches current weather from HKO.
type Client struct {
	cfg     ClientConfig
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*recommend.WeatherSnapshot]
	logger  zerolog.Logger
}

// NewClient creates a client. Zero-valued fields of cfg take defaults.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	def := DefaultClientConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Station == "" {
		cfg.Station = def.Station
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = def.RequestsPerMinute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = def.BreakerFailures
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = def.BreakerTimeout
	}

	c := &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/60), cfg.Burst),
		logger:  logger.With().Str("component", "weather_client").Logger(),
	}

	settings := gobreaker.Settings{
		Name:        "hko",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), int(to))
			c.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Weather circuit breaker state changed")
		},
	}
	c.breaker = gobreaker.NewCircuitBreaker[*recommend.WeatherSnapshot](settings)

	return c
}

// Fetch retrieves the current weather snapshot.
func (c *Client) Fetch(ctx context.Context) (*recommend.WeatherSnapshot, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordWeatherFetch("rate_limited", 0)
		return nil, fmt.Errorf("weather rate limit: %w", err)
	}

	start := time.Now()
	snap, err := c.breaker.Execute(func() (*recommend.WeatherSnapshot, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordWeatherFetch("circuit_open", 0)
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.RecordWeatherFetch("error", time.Since(start))
		return nil, err
	}

	metrics.RecordWeatherFetch("success", time.Since(start))
	return snap, nil
}

func (c *Client) fetch(ctx context.Context) (*recommend.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("dataType", "rhrread")
	params.Set("lang", "en")
	reqURL := c.cfg.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read weather response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	return parseReport(body, c.cfg.Station)
}

// BreakerState returns the current circuit breaker state.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}
