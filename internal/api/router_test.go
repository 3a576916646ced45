// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/trailhead/internal/config"
	"github.com/tomtom215/trailhead/internal/middleware"
)

func TestRouterFallbacks(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)

	expectError(t, s.do(t, http.MethodGet, "/api/v1/nowhere", nil), http.StatusNotFound, codeNotFound)
	expectError(t, s.do(t, http.MethodPost, "/api/v1/trails", nil), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
}

func TestRouterRequestID(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/trails", nil, middleware.RequestIDHeader, "trace-42")
	if got := rec.Header().Get(middleware.RequestIDHeader); got != "trace-42" {
		t.Errorf("response header = %q, want trace-42", got)
	}
	if env := decodeEnvelope(t, rec); env.Metadata.RequestID != "trace-42" {
		t.Errorf("metadata request_id = %q", env.Metadata.RequestID)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)

	s.do(t, http.MethodGet, "/api/v1/trails/tai-tam", nil)
	rec := s.do(t, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `endpoint="/api/v1/trails/{trailID}"`) {
		t.Error("request metrics missing route pattern label")
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	t.Parallel()
	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = []string{"https://hike.example"}
	s := newTestServer(t, nil, mw)

	rec := s.do(t, http.MethodOptions, "/api/v1/trails", nil,
		"Origin", "https://hike.example",
		"Access-Control-Request-Method", http.MethodGet,
	)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://hike.example" {
		t.Errorf("Allow-Origin = %q", got)
	}

	rec = s.do(t, http.MethodGet, "/api/v1/trails", nil, "Origin", "https://evil.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin for unlisted origin = %q", got)
	}
}

func TestRouterRateLimit(t *testing.T) {
	t.Parallel()
	mw := ChiMiddlewareConfigFrom(&config.SecurityConfig{
		RateLimitReqs:   2,
		RateLimitWindow: time.Minute,
	})
	s := newTestServer(t, nil, mw)

	for i := 0; i < 2; i++ {
		if rec := s.do(t, http.MethodGet, "/api/v1/trails", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	expectError(t, s.do(t, http.MethodGet, "/api/v1/trails", nil), http.StatusTooManyRequests, codeRateLimited)

	// Probes are exempt.
	if rec := s.do(t, http.MethodGet, "/api/v1/health/live", nil); rec.Code != http.StatusOK {
		t.Errorf("health status = %d while rate limited", rec.Code)
	}
}

func TestRouterCompression(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/trails", nil, "Accept-Encoding", "gzip")
	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"龍脊", "龍脊"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
