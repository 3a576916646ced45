// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/trailhead/internal/models"
	"github.com/tomtom215/trailhead/internal/recommend"
	"github.com/tomtom215/trailhead/internal/validation"
)

// Trails handles GET /api/v1/trails.
//
// Optional query parameters:
//   - user: overlay that user's favorites onto the listing
//   - difficulty: easy, moderate or challenging
func (h *Handler) Trails(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	difficulty := recommend.Difficulty(q.Get("difficulty"))
	if difficulty != "" && !difficulty.Valid() {
		respondError(w, r, http.StatusBadRequest, codeValidation,
			"difficulty must be one of easy, moderate, challenging", nil)
		return
	}

	favorites, ok := h.favoritesFor(w, r, q.Get("user"))
	if !ok {
		return
	}

	all := h.catalog.All()
	trails := make([]recommend.Trail, 0, len(all))
	for i := range all {
		if difficulty != "" && all[i].Difficulty != difficulty {
			continue
		}
		all[i].Favorite = favorites[all[i].ID]
		trails = append(trails, all[i])
	}

	respondSuccess(w, r, http.StatusOK, models.TrailList{
		Trails: trails,
		Total:  len(trails),
	})
}

// Trail handles GET /api/v1/trails/{trailID}.
func (h *Handler) Trail(w http.ResponseWriter, r *http.Request) {
	trail, err := h.catalog.Get(chi.URLParam(r, "trailID"))
	if err != nil {
		respondStoreError(w, r, err, "Trail not found")
		return
	}

	favorites, ok := h.favoritesFor(w, r, r.URL.Query().Get("user"))
	if !ok {
		return
	}
	trail.Favorite = favorites[trail.ID]

	respondSuccess(w, r, http.StatusOK, trail)
}

// favoritesFor loads the favorites of userID, or nil when userID is empty.
// On failure the error response has been written.
func (h *Handler) favoritesFor(w http.ResponseWriter, r *http.Request, userID string) (map[string]bool, bool) {
	if userID == "" {
		return nil, true
	}
	if !validation.ValidIdentifier(userID) {
		respondError(w, r, http.StatusBadRequest, codeValidation,
			"user must be lowercase letters, digits, '-' or '_'", nil)
		return nil, false
	}
	favorites, err := h.store.Favorites(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "")
		return nil, false
	}
	return favorites, true
}
