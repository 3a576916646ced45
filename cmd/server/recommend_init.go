// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/trailhead/internal/catalog"
	"github.com/tomtom215/trailhead/internal/config"
	"github.com/tomtom215/trailhead/internal/recommend"
	"github.com/tomtom215/trailhead/internal/store"
)

// buildEngineConfig creates the engine configuration from app config.
// Factor weights keep their built-in values; only the repeat window is
// tunable.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	ec := recommend.DefaultConfig()
	ec.BaseScore = cfg.Recommend.BaseScore
	ec.MinScore = cfg.Recommend.MinScore
	ec.CapSceneryBonus = cfg.Recommend.CapSceneryBonus
	if cfg.Recommend.RepeatWindow > 0 {
		ec.Weights.RepeatWindow = cfg.Recommend.RepeatWindow
	}
	return ec
}

// initRecommend builds the engine and wraps it in a service reading from
// the catalog and store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func initRecommend(
	cfg *config.Config,
	trails *catalog.Catalog,
	st *store.Store,
	wx recommend.WeatherSource,
	logger zerolog.Logger,
) (*recommend.Service, error) {
	ec := buildEngineConfig(cfg)
	engine, err := recommend.NewEngine(ec)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	data := store.NewRecommendationDataProvider(trails, st, cfg.Store.HistoryLimit)

	logger.Info().
		Float64("base_score", ec.BaseScore).
		Float64("min_score", ec.MinScore).
		Bool("cap_scenery_bonus", ec.CapSceneryBonus).
		Dur("repeat_window", ec.Weights.RepeatWindow).
		Int("history_limit", cfg.Store.HistoryLimit).
		Msg("Recommendation engine initialized")

	return recommend.NewService(engine, data, wx, logger), nil
}
