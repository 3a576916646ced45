// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/trailhead/internal/logging"
	"github.com/tomtom215/trailhead/internal/models"
	"github.com/tomtom215/trailhead/internal/recommend"
)

// recommendTimeout bounds store reads for one recommendation request.
const recommendTimeout = 10 * time.Second

// recommendationsQuery holds the parsed query parameters of the
// recommendations endpoint.
type recommendationsQuery struct {
	AvailableMinutes *int `json:"available_minutes" validate:"omitempty,gte=0,lte=1440"`
	Limit            int  `json:"limit" validate:"gte=1"`
	Explain          bool `json:"explain"`
	At               time.Time
	Language         string
}

// Recommendations handles GET /api/v1/users/{userID}/recommendations.
// Returns the ranked trails for the user, with reasons resolved to text in
// the negotiated language.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID := logging.UserIDFromContext(r.Context())

	q, apiErr := h.parseRecommendationsQuery(r)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	req := recommend.ServiceRequest{
		UserID:  userID,
		Now:     q.At,
		Limit:   q.Limit,
		Explain: q.Explain,
	}
	if q.AvailableMinutes != nil {
		d := time.Duration(*q.AvailableMinutes) * time.Minute
		req.AvailableTime = &d
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	resp, err := h.recommend.Recommend(ctx, req)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, codeStore, "Failed to generate recommendations", err)
		return
	}

	out := models.RecommendationsResponse{
		UserID:          userID,
		Language:        q.Language,
		Items:           make([]models.RecommendationItem, len(resp.Items)),
		TotalCandidates: resp.TotalCandidates,
		EvaluatedAt:     resp.Metadata.GeneratedAt,
		Breakdowns:      resp.Breakdowns,
	}
	for i := range resp.Items {
		rec := &resp.Items[i]
		ids := make([]string, len(rec.Reasons))
		for j, reason := range rec.Reasons {
			ids[j] = string(reason)
		}
		out.Items[i] = models.RecommendationItem{
			Trail:        rec.Trail,
			Score:        rec.Score,
			MatchPercent: rec.MatchPercent,
			Reasons:      ids,
			ReasonText:   h.i18n.Reasons(q.Language, ids),
		}
	}
	if resp.Metadata.Weather != nil {
		out.Weather = h.weatherView(resp.Metadata.Weather, q.Language)
	}

	w.Header().Set("Content-Language", q.Language)
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   out,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			RequestID:   resp.Metadata.RequestID,
			QueryTimeMS: resp.Metadata.LatencyMS,
		},
	})
}

// parseRecommendationsQuery reads and validates the query string. The
// evaluation instant is converted to the recommendation timezone so the
// time-of-day factor sees local hours.
func (h *Handler) parseRecommendationsQuery(r *http.Request) (*recommendationsQuery, *models.APIError) {
	query := r.URL.Query()
	q := &recommendationsQuery{
		Limit:    h.config.Recommend.DefaultLimit,
		At:       h.now(),
		Language: h.language(query.Get("lang"), r.Header.Get("Accept-Language")),
	}

	if v := query.Get("available_minutes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, paramError("available_minutes", "available_minutes must be a whole number of minutes")
		}
		q.AvailableMinutes = &n
	}

	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, paramError("limit", "limit must be an integer")
		}
		q.Limit = n
	}

	if v := query.Get("explain"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, paramError("explain", "explain must be true or false")
		}
		q.Explain = b
	}

	if v := query.Get("at"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, paramError("at", "at must be an RFC 3339 timestamp")
		}
		q.At = t
	}
	q.At = q.At.In(h.location)

	if apiErr := validateRequest(q); apiErr != nil {
		return nil, apiErr
	}
	if maxLimit := h.config.Recommend.MaxLimit; maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q, nil
}

func paramError(field, message string) *models.APIError {
	return &models.APIError{
		Code:    codeValidation,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}
