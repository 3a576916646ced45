// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/trailhead/internal/models"
	"github.com/tomtom215/trailhead/internal/recommend"
)

func TestHealthLive(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)

	got := decodeData[models.HealthResponse](t, s.do(t, http.MethodGet, "/api/v1/health/live", nil), http.StatusOK)
	if got.Status != "ok" {
		t.Errorf("status = %q, want ok", got.Status)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	t.Run("ready without weather", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, &fakeWeather{err: errors.New("no snapshot")}, nil)

		got := decodeData[models.HealthResponse](t, s.do(t, http.MethodGet, "/api/v1/health/ready", nil), http.StatusOK)
		if got.Trails != len(testTrails) {
			t.Errorf("trails = %d, want %d", got.Trails, len(testTrails))
		}
		if got.WeatherAvailable {
			t.Error("weather reported available")
		}
		if got.Checks["store"] != "ok" || got.Checks["catalog"] != "ok" {
			t.Errorf("checks = %v", got.Checks)
		}
	})

	t.Run("store closed", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, nil, nil)
		if err := s.store.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		rec := s.do(t, http.MethodGet, "/api/v1/health/ready", nil)
		expectError(t, rec, http.StatusServiceUnavailable, "NOT_READY")
		got := decodeData[models.HealthResponse](t, rec, http.StatusServiceUnavailable)
		if got.Status != "degraded" || got.Checks["weather"] != "disabled" {
			t.Errorf("health = %+v", got)
		}
	})
}

func TestTrails(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)
	ctx := context.Background()
	if err := s.store.SetFavorite(ctx, "amy", "tai-tam", true); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}

	tests := []struct {
		name      string
		target    string
		wantIDs   []string
		favorites []string
	}{
		{"all in catalog order", "/api/v1/trails", []string{"dragons-back", "tai-tam", "lion-rock"}, nil},
		{"difficulty filter", "/api/v1/trails?difficulty=easy", []string{"tai-tam"}, nil},
		{"favorites overlay", "/api/v1/trails?user=amy", []string{"dragons-back", "tai-tam", "lion-rock"}, []string{"tai-tam"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeData[models.TrailList](t, s.do(t, http.MethodGet, tt.target, nil), http.StatusOK)
			if got.Total != len(tt.wantIDs) || len(got.Trails) != len(tt.wantIDs) {
				t.Fatalf("total = %d, want %d", got.Total, len(tt.wantIDs))
			}
			fav := make(map[string]bool)
			for _, id := range tt.favorites {
				fav[id] = true
			}
			for i, trail := range got.Trails {
				if trail.ID != tt.wantIDs[i] {
					t.Errorf("trails[%d] = %q, want %q", i, trail.ID, tt.wantIDs[i])
				}
				if trail.Favorite != fav[trail.ID] {
					t.Errorf("%s favorite = %v", trail.ID, trail.Favorite)
				}
			}
		})
	}

	t.Run("bad difficulty", func(t *testing.T) {
		expectError(t, s.do(t, http.MethodGet, "/api/v1/trails?difficulty=extreme", nil), http.StatusBadRequest, codeValidation)
	})

	t.Run("bad user", func(t *testing.T) {
		expectError(t, s.do(t, http.MethodGet, "/api/v1/trails?user=Not%20Valid", nil), http.StatusBadRequest, codeValidation)
	})
}

func TestTrail(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)

	got := decodeData[recommend.Trail](t, s.do(t, http.MethodGet, "/api/v1/trails/lion-rock", nil), http.StatusOK)
	if got.Name != "Lion Rock" {
		t.Errorf("name = %q", got.Name)
	}

	expectError(t, s.do(t, http.MethodGet, "/api/v1/trails/nowhere", nil), http.StatusNotFound, codeTrailNotFound)
}

func TestPreferences(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)
	const path = "/api/v1/users/amy/preferences"

	expectError(t, s.do(t, http.MethodGet, path, nil), http.StatusNotFound, codeNotFound)

	pref := map[string]interface{}{
		"preferred_difficulty": "moderate",
		"fitness_level":        "intermediate",
		"distance":             map[string]float64{"min_km": 5, "max_km": 10},
		"scenery":              []string{"sea"},
	}
	decodeData[recommend.UserPreference](t, s.do(t, http.MethodPut, path, pref), http.StatusOK)

	got := decodeData[recommend.UserPreference](t, s.do(t, http.MethodGet, path, nil), http.StatusOK)
	if got.PreferredDifficulty == nil || *got.PreferredDifficulty != recommend.DifficultyModerate {
		t.Errorf("preferred difficulty = %v", got.PreferredDifficulty)
	}
	if got.Distance == nil || got.Distance.MaxKm != 10 {
		t.Errorf("distance = %+v", got.Distance)
	}

	rec := s.do(t, http.MethodDelete, path, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	expectError(t, s.do(t, http.MethodGet, path, nil), http.StatusNotFound, codeNotFound)
}

func TestPutPreferencesRejects(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty body", ""},
		{"malformed json", "{"},
		{"unknown field", `{"favourite_colour":"green"}`},
		{"bad difficulty", `{"preferred_difficulty":"extreme"}`},
		{"inverted range", `{"distance":{"min_km":10,"max_km":5}}`},
		{"bad scenery", `{"scenery":["desert"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPut, "/api/v1/users/amy/preferences", tt.body)
			expectError(t, rec, http.StatusBadRequest, codeValidation)
		})
	}
}

func TestHikes(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)
	const path = "/api/v1/users/amy/hikes"

	for i, id := range []string{"tai-tam", "lion-rock"} {
		body := models.HikeRequest{
			TrailID:    id,
			StartedAt:  testNow.Add(time.Duration(i-2) * 24 * time.Hour),
			Completed:  true,
			DistanceKm: 5,
		}
		got := decodeData[recommend.HikeRecord](t, s.do(t, http.MethodPost, path, body), http.StatusCreated)
		if got.TrailName == "" {
			t.Errorf("hike %s stored without trail name", id)
		}
	}

	list := decodeData[models.HikeList](t, s.do(t, http.MethodGet, path, nil), http.StatusOK)
	if list.Total != 2 || list.Hikes[0].TrailID != "tai-tam" {
		t.Errorf("hikes = %+v", list.Hikes)
	}

	list = decodeData[models.HikeList](t, s.do(t, http.MethodGet, path+"?limit=1", nil), http.StatusOK)
	if list.Total != 1 || list.Hikes[0].TrailID != "lion-rock" {
		t.Errorf("limited hikes = %+v", list.Hikes)
	}

	expectError(t, s.do(t, http.MethodGet, path+"?limit=0", nil), http.StatusBadRequest, codeValidation)
}

func TestRecordHikeRejects(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)
	const path = "/api/v1/users/amy/hikes"

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantCode   string
	}{
		{"missing trail", `{"started_at":"2026-03-10T01:00:00Z"}`, http.StatusBadRequest, codeValidation},
		{"missing start", `{"trail_id":"tai-tam"}`, http.StatusBadRequest, codeValidation},
		{"negative distance", `{"trail_id":"tai-tam","started_at":"2026-03-10T01:00:00Z","distance_km":-1}`, http.StatusBadRequest, codeValidation},
		{"unknown trail", `{"trail_id":"nowhere","started_at":"2026-03-10T01:00:00Z"}`, http.StatusNotFound, codeTrailNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, s.do(t, http.MethodPost, path, tt.body), tt.wantStatus, tt.wantCode)
		})
	}
}

func TestFavorites(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)
	const base = "/api/v1/users/amy/favorites"

	for i := 0; i < 2; i++ {
		got := decodeData[models.FavoriteResponse](t, s.do(t, http.MethodPut, base+"/lion-rock", nil), http.StatusOK)
		if !got.Favorite {
			t.Fatal("favorite not set")
		}
	}

	list := decodeData[models.TrailList](t, s.do(t, http.MethodGet, base, nil), http.StatusOK)
	if list.Total != 1 || list.Trails[0].ID != "lion-rock" || !list.Trails[0].Favorite {
		t.Errorf("favorites = %+v", list.Trails)
	}

	decodeData[models.FavoriteResponse](t, s.do(t, http.MethodDelete, base+"/lion-rock", nil), http.StatusOK)
	list = decodeData[models.TrailList](t, s.do(t, http.MethodGet, base, nil), http.StatusOK)
	if list.Total != 0 {
		t.Errorf("favorites after delete = %+v", list.Trails)
	}

	expectError(t, s.do(t, http.MethodPut, base+"/nowhere", nil), http.StatusNotFound, codeTrailNotFound)
}

func TestUserIDValidated(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)

	for _, path := range []string{
		"/api/v1/users/Amy/preferences",
		"/api/v1/users/a%20b/hikes",
		"/api/v1/users/-amy/recommendations",
	} {
		t.Run(path, func(t *testing.T) {
			expectError(t, s.do(t, http.MethodGet, path, nil), http.StatusBadRequest, codeValidation)
		})
	}
}

func TestWeather(t *testing.T) {
	t.Parallel()

	snap := &recommend.WeatherSnapshot{
		Location:     "Hong Kong Observatory",
		TemperatureC: 31,
		UVIndex:      6,
		Suggestion:   "weather.suggestion.hot",
		UpdatedAt:    testNow.Add(-5 * time.Minute),
	}

	t.Run("available", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, &fakeWeather{snap: snap}, nil)

		rec := s.do(t, http.MethodGet, "/api/v1/weather?lang=en", nil)
		got := decodeData[models.WeatherView](t, rec, http.StatusOK)
		if got.TemperatureC != 31 || got.AgeSeconds != 300 {
			t.Errorf("weather = %+v", got)
		}
		if want := s.i18n.Text("en", snap.Suggestion); got.SuggestionText != want {
			t.Errorf("suggestion = %q, want %q", got.SuggestionText, want)
		}
		if rec.Header().Get("Content-Language") != "en" {
			t.Errorf("Content-Language = %q", rec.Header().Get("Content-Language"))
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, &fakeWeather{err: errors.New("stale")}, nil)
		expectError(t, s.do(t, http.MethodGet, "/api/v1/weather", nil), http.StatusServiceUnavailable, codeWeatherUnavailable)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, nil, nil)
		expectError(t, s.do(t, http.MethodGet, "/api/v1/weather", nil), http.StatusServiceUnavailable, codeWeatherUnavailable)
	})
}
