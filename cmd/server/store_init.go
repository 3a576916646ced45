// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/trailhead/internal/config"
	"github.com/tomtom215/trailhead/internal/store"
)

// buildStoreConfig maps the store section onto store.Config.
func buildStoreConfig(cfg *config.Config) store.Config {
	return store.Config{
		Path:       cfg.Store.Path,
		InMemory:   cfg.Store.InMemory,
		SyncWrites: cfg.Store.SyncWrites,
		GCInterval: cfg.Store.GCInterval,
	}
}

// initStore opens the user data store. The caller closes it.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func initStore(cfg *config.Config, logger zerolog.Logger) (*store.Store, error) {
	st, err := store.Open(buildStoreConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Info().
		Str("path", cfg.Store.Path).
		Bool("in_memory", cfg.Store.InMemory).
		Dur("gc_interval", cfg.Store.GCInterval).
		Msg("Store opened")
	return st, nil
}
