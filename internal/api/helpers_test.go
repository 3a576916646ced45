// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/trailhead/internal/catalog"
	"github.com/tomtom215/trailhead/internal/config"
	"github.com/tomtom215/trailhead/internal/i18n"
	"github.com/tomtom215/trailhead/internal/models"
	"github.com/tomtom215/trailhead/internal/recommend"
	"github.com/tomtom215/trailhead/internal/store"
)

// testNow is noon in Hong Kong, outside the sunrise and sunset windows.
var testNow = time.Date(2026, 3, 14, 4, 0, 0, 0, time.UTC)

var testTrails = []recommend.Trail{
	{
		ID: "dragons-back", Name: "Dragon's Back", Summary: "Ridge walk with sea views",
		LengthKm: 8.5, DurationMinutes: 180, Difficulty: recommend.DifficultyModerate,
	},
	{
		ID: "tai-tam", Name: "Tai Tam Reservoirs", Summary: "Gentle loop past four reservoirs under forest cover",
		LengthKm: 6.5, DurationMinutes: 120, Difficulty: recommend.DifficultyEasy,
	},
	{
		ID: "lion-rock", Name: "Lion Rock", Summary: "Steep climb with a city skyline panorama",
		LengthKm: 5, DurationMinutes: 150, Difficulty: recommend.DifficultyChallenging,
	},
}

type fakeWeather struct {
	snap *recommend.WeatherSnapshot
	err  error
}

func (f *fakeWeather) Current() (*recommend.WeatherSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.snap
	return &s, nil
}

type testServer struct {
	handler *Handler
	router  http.Handler
	store   *store.Store
	i18n    *i18n.Resolver
}

func testConfig() *config.Config {
	return &config.Config{
		Recommend: config.RecommendConfig{
			Timezone:     "Asia/Hong_Kong",
			DefaultLimit: 10,
			MaxLimit:     2,
		},
		I18n: config.I18nConfig{DefaultLanguage: i18n.TraditionalChinese},
	}
}

// newTestServer wires the API over an in-memory store and a three-trail
// catalog. weather may be nil.
func newTestServer(t *testing.T, weather recommend.WeatherSource, mw *ChiMiddlewareConfig) *testServer {
	t.Helper()

	st, err := store.Open(store.Config{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	trails, err := catalog.NewFromTrails(testTrails, zerolog.Nop())
	if err != nil {
		t.Fatalf("catalog.NewFromTrails: %v", err)
	}

	engine, err := recommend.NewEngine(recommend.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	svc := recommend.NewService(engine, store.NewRecommendationDataProvider(trails, st, 50), weather, zerolog.Nop())

	resolver, err := i18n.New()
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}

	h := NewHandler(testConfig(), trails, st, svc, weather, resolver)
	h.now = func() time.Time { return testNow }

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}

	return &testServer{
		handler: h,
		router:  NewRouter(h, mw).Setup(),
		store:   st,
		i18n:    resolver,
	}
}

// do sends a request through the full router.
func (s *testServer) do(t *testing.T, method, target string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, r)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

// decodeData checks the status code and decodes the data payload into T.
func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder, wantStatus int) T {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, wantStatus, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

// expectError checks the status code and the error code of the envelope.
func expectError(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, wantStatus, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "error" || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != wantCode {
		t.Errorf("error code = %q, want %q", env.Error.Code, wantCode)
	}
}
