// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/trailhead/internal/logging"
	"github.com/tomtom215/trailhead/internal/models"
	"github.com/tomtom215/trailhead/internal/recommend"
)

const (
	defaultHikeListLimit = 50
	maxHikeListLimit     = 500
)

// Preferences handles GET /api/v1/users/{userID}/preferences.
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	userID := logging.UserIDFromContext(r.Context())

	pref, err := h.store.GetPreference(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "No preferences stored for this user")
		return
	}
	respondSuccess(w, r, http.StatusOK, pref)
}

// PutPreferences handles PUT /api/v1/users/{userID}/preferences.
// The body replaces any stored preference.
func (h *Handler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	userID := logging.UserIDFromContext(r.Context())

	var pref recommend.UserPreference
	if err := decodeJSONBody(w, r, &pref); err != nil {
		respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&pref); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	if err := h.store.PutPreference(r.Context(), userID, &pref); err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	logging.Ctx(r.Context()).Info().Msg("Preferences updated")
	respondSuccess(w, r, http.StatusOK, pref)
}

// DeletePreferences handles DELETE /api/v1/users/{userID}/preferences.
func (h *Handler) DeletePreferences(w http.ResponseWriter, r *http.Request) {
	userID := logging.UserIDFromContext(r.Context())

	if err := h.store.DeletePreference(r.Context(), userID); err != nil {
		respondStoreError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Hikes handles GET /api/v1/users/{userID}/hikes, oldest first.
func (h *Handler) Hikes(w http.ResponseWriter, r *http.Request) {
	userID := logging.UserIDFromContext(r.Context())

	limit := getIntParam(r, "limit", defaultHikeListLimit)
	if limit < 1 || limit > maxHikeListLimit {
		respondError(w, r, http.StatusBadRequest, codeValidation, "limit must be between 1 and 500", nil)
		return
	}

	hikes, err := h.store.ListHikes(r.Context(), userID, limit)
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}
	respondSuccess(w, r, http.StatusOK, models.HikeList{
		Hikes: hikes,
		Total: len(hikes),
	})
}

// RecordHike handles POST /api/v1/users/{userID}/hikes. The trail must
// exist in the catalog; its name is stored alongside the ID so history
// survives later ID changes.
func (h *Handler) RecordHike(w http.ResponseWriter, r *http.Request) {
	userID := logging.UserIDFromContext(r.Context())

	var req models.HikeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	trail, err := h.catalog.Get(req.TrailID)
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	rec := recommend.HikeRecord{
		TrailID:    trail.ID,
		TrailName:  trail.Name,
		StartedAt:  req.StartedAt.UTC(),
		Completed:  req.Completed,
		DistanceKm: req.DistanceKm,
	}
	if err := h.store.AppendHike(r.Context(), userID, &rec); err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("trail_id", rec.TrailID).
		Bool("completed", rec.Completed).
		Msg("Hike recorded")
	respondSuccess(w, r, http.StatusCreated, rec)
}

// Favorites handles GET /api/v1/users/{userID}/favorites and lists the
// marked trails in catalog order.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	userID := logging.UserIDFromContext(r.Context())

	favorites, err := h.store.Favorites(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	all := h.catalog.All()
	trails := make([]recommend.Trail, 0, len(favorites))
	for i := range all {
		if favorites[all[i].ID] {
			all[i].Favorite = true
			trails = append(trails, all[i])
		}
	}
	respondSuccess(w, r, http.StatusOK, models.TrailList{
		Trails: trails,
		Total:  len(trails),
	})
}

// PutFavorite handles PUT /api/v1/users/{userID}/favorites/{trailID}.
func (h *Handler) PutFavorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, true)
}

// DeleteFavorite handles DELETE /api/v1/users/{userID}/favorites/{trailID}.
func (h *Handler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, false)
}

// setFavorite is idempotent in both directions.
func (h *Handler) setFavorite(w http.ResponseWriter, r *http.Request, favorite bool) {
	userID := logging.UserIDFromContext(r.Context())

	trail, err := h.catalog.Get(chi.URLParam(r, "trailID"))
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	if err := h.store.SetFavorite(r.Context(), userID, trail.ID, favorite); err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("trail_id", trail.ID).
		Bool("favorite", favorite).
		Msg("Favorite updated")
	respondSuccess(w, r, http.StatusOK, models.FavoriteResponse{
		TrailID:  trail.ID,
		Favorite: favorite,
	})
}
