// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/trailhead/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Uptime: h.uptime(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the store answers and the catalog is non-empty.
// Weather is reported but never blocks readiness; recommendations degrade
// without it.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string, 3)
	ready := true

	if err := h.store.Ping(r.Context()); err != nil {
		checks["store"] = err.Error()
		ready = false
	} else {
		checks["store"] = "ok"
	}

	trails := h.catalog.Len()
	if trails == 0 {
		checks["catalog"] = "empty"
		ready = false
	} else {
		checks["catalog"] = "ok"
	}

	weatherOK := false
	if h.weather == nil {
		checks["weather"] = "disabled"
	} else if _, err := h.weather.Current(); err != nil {
		checks["weather"] = err.Error()
	} else {
		checks["weather"] = "ok"
		weatherOK = true
	}

	resp := models.HealthResponse{
		Status:           "ok",
		Checks:           checks,
		Trails:           trails,
		WeatherAvailable: weatherOK,
		Uptime:           h.uptime(),
	}
	if !ready {
		resp.Status = "degraded"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     resp,
			Metadata: newMetadata(r),
			Error: &models.APIError{
				Code:    "NOT_READY",
				Message: "Service is not ready",
			},
		})
		return
	}

	respondSuccess(w, r, http.StatusOK, resp)
}

func (h *Handler) uptime() string {
	return time.Since(h.startTime).Round(time.Second).String()
}
