// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/trailhead/internal/config"
	"github.com/tomtom215/trailhead/internal/recommend"
	"github.com/tomtom215/trailhead/internal/supervisor"
	"github.com/tomtom215/trailhead/internal/weather"
)

func buildWeatherClientConfig(cfg *config.Config) weather.ClientConfig {
	return weather.ClientConfig{
		BaseURL:           cfg.Weather.BaseURL,
		Station:           cfg.Weather.Station,
		Timeout:           cfg.Weather.Timeout,
		RequestsPerMinute: cfg.Weather.RequestsPerMinute,
		Burst:             cfg.Weather.Burst,
		BreakerFailures:   cfg.Weather.BreakerFailures,
		BreakerTimeout:    cfg.Weather.BreakerTimeout,
	}
}

func buildWeatherServiceConfig(cfg *config.Config) weather.ServiceConfig {
	return weather.ServiceConfig{
		RefreshInterval: cfg.Weather.RefreshInterval,
		MaxStaleness:    cfg.Weather.MaxStaleness,
	}
}

// initWeather creates the HKO client and refresher and adds the refresher
// to the data layer. It returns nil when weather is disabled.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func initWeather(cfg *config.Config, tree *supervisor.SupervisorTree, logger zerolog.Logger) recommend.WeatherSource {
	if !cfg.Weather.Enabled {
		logger.Info().Msg("Weather disabled (WEATHER_ENABLED=false); recommendations skip the weather factor")
		return nil
	}

	client := weather.NewClient(buildWeatherClientConfig(cfg), logger)
	svc := weather.NewService(client, buildWeatherServiceConfig(cfg), logger)
	tree.AddDataService(svc)

	logger.Info().
		Str("station", cfg.Weather.Station).
		Dur("refresh_interval", cfg.Weather.RefreshInterval).
		Dur("max_staleness", cfg.Weather.MaxStaleness).
		Msg("Weather refresher added to supervisor tree")
	return svc
}
