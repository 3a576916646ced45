// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/trailhead/internal/api"
	"github.com/tomtom215/trailhead/internal/catalog"
	"github.com/tomtom215/trailhead/internal/config"
	"github.com/tomtom215/trailhead/internal/i18n"
	"github.com/tomtom215/trailhead/internal/logging"
	"github.com/tomtom215/trailhead/internal/supervisor"
	"github.com/tomtom215/trailhead/internal/supervisor/services"
)

const httpShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config errors are logged with the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Trailhead stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires every component and blocks until a shutdown signal.
func run(cfg *config.Config) error {
	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Bool("weather_enabled", cfg.Weather.Enabled).
		Str("timezone", cfg.Recommend.Timezone).
		Msg("Configuration loaded")

	warnInsecureSettings(cfg)

	st, err := initStore(cfg, logging.WithComponent("store"))
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	trails, err := catalog.New(cfg.Catalog.Path, logging.WithComponent("catalog"))
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logging.Info().Int("trails", trails.Len()).Str("path", trails.Path()).Msg("Trail catalog loaded")

	resolver, err := i18n.New()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	// Data layer
	tree.AddDataService(st)
	if cfg.Catalog.WatchEnabled() {
		tree.AddDataService(trails)
		logging.Info().Str("path", cfg.Catalog.Path).Msg("Catalog watcher added to supervisor tree")
	}
	wx := initWeather(cfg, tree, logging.WithComponent("weather"))

	rec, err := initRecommend(cfg, trails, st, wx, logging.Logger())
	if err != nil {
		return err
	}

	// API layer
	handler := api.NewHandler(cfg, trails, st, rec, wx, resolver)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * time.Minute,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, httpShutdownTimeout, logging.Logger()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}

func warnInsecureSettings(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins for public deployments")
			break
		}
	}
	if cfg.Store.InMemory {
		logging.Warn().Msg("Store is in memory (STORE_IN_MEMORY=true); user data is lost on restart")
	}
}
