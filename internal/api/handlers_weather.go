// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"net/http"

	"github.com/tomtom215/trailhead/internal/models"
	"github.com/tomtom215/trailhead/internal/recommend"
)

// Weather handles GET /api/v1/weather and returns the snapshot the engine
// would score against, with the hiking suggestion resolved to text.
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	if h.weather == nil {
		respondError(w, r, http.StatusServiceUnavailable, codeWeatherUnavailable, "Weather is disabled", nil)
		return
	}

	snap, err := h.weather.Current()
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, codeWeatherUnavailable, "No current weather available", nil)
		return
	}

	lang := h.language(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	w.Header().Set("Content-Language", lang)
	respondSuccess(w, r, http.StatusOK, h.weatherView(snap, lang))
}

func (h *Handler) weatherView(snap *recommend.WeatherSnapshot, lang string) *models.WeatherView {
	view := &models.WeatherView{
		WeatherSnapshot: *snap,
		SuggestionText:  h.i18n.Text(lang, snap.Suggestion),
	}
	if !snap.UpdatedAt.IsZero() {
		if age := h.now().Sub(snap.UpdatedAt); age > 0 {
			view.AgeSeconds = int64(age.Seconds())
		}
	}
	return view
}
