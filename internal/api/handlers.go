// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"time"

	"github.com/tomtom215/trailhead/internal/catalog"
	"github.com/tomtom215/trailhead/internal/config"
	"github.com/tomtom215/trailhead/internal/i18n"
	"github.com/tomtom215/trailhead/internal/recommend"
	"github.com/tomtom215/trailhead/internal/store"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and request helpers
//   - handlers_health.go: Liveness and readiness probes
//   - handlers_trails.go: Catalog endpoints
//   - handlers_users.go: Preferences, hikes and favorites
//   - handlers_recommend.go: Recommendations
//   - handlers_weather.go: Current weather
type Handler struct {
	config    *config.Config
	catalog   *catalog.Catalog
	store     *store.Store
	recommend *recommend.Service
	weather   recommend.WeatherSource // nil when weather is disabled
	i18n      *i18n.Resolver
	location  *time.Location
	now       func() time.Time
	startTime time.Time
}

// NewHandler creates a new API handler. weather may be nil.
//
// Example:
//
//	handler := api.NewHandler(cfg, trails, st, svc, wx, resolver)
//	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(&cfg.Security))
//	http.ListenAndServe(":8080", router.Setup())
func NewHandler(
	cfg *config.Config,
	trails *catalog.Catalog,
	st *store.Store,
	svc *recommend.Service,
	weather recommend.WeatherSource,
	resolver *i18n.Resolver,
) *Handler {
	return &Handler{
		config:    cfg,
		catalog:   trails,
		store:     st,
		recommend: svc,
		weather:   weather,
		i18n:      resolver,
		location:  cfg.Recommend.Location(),
		now:       time.Now,
		startTime: time.Now(),
	}
}

// language negotiates the response language from ?lang and
// Accept-Language, using the configured default when neither is given.
func (h *Handler) language(lang, acceptLanguage string) string {
	if lang == "" && acceptLanguage == "" {
		return h.config.I18n.DefaultLanguage
	}
	return h.i18n.Negotiate(lang, acceptLanguage)
}
