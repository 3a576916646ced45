// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/trailhead/internal/catalog"
	"github.com/tomtom215/trailhead/internal/store"
)

// Error codes returned in APIError.Code.
const (
	codeValidation         = "VALIDATION_ERROR"
	codeTrailNotFound      = "TRAIL_NOT_FOUND"
	codeNotFound           = "NOT_FOUND"
	codeStore              = "STORE_ERROR"
	codeWeatherUnavailable = "WEATHER_UNAVAILABLE"
	codeRateLimited        = "RATE_LIMIT_EXCEEDED"
	codeInternal           = "INTERNAL_ERROR"
)

// respondStoreError maps store and catalog errors to HTTP responses.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, catalog.ErrTrailNotFound):
		respondError(w, r, http.StatusNotFound, codeTrailNotFound, "Trail not found", nil)
	case errors.Is(err, store.ErrNotFound):
		respondError(w, r, http.StatusNotFound, codeNotFound, notFoundMsg, nil)
	case errors.Is(err, store.ErrInvalid):
		respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
	default:
		respondError(w, r, http.StatusInternalServerError, codeStore, "User data store error", err)
	}
}
