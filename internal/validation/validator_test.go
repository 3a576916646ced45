// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package validation

import (
	"strings"
	"testing"
)

type rangeRequest struct {
	MinKm float64 `json:"min_km" validate:"gte=0"`
	MaxKm float64 `json:"max_km" validate:"gtefield=MinKm"`
}

type hikeRequest struct {
	TrailID string `json:"trail_id" validate:"required,identifier"`
	Level   string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Note    string `json:"note" validate:"max=5"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{"valid range", &rangeRequest{MinKm: 1, MaxKm: 5}, false, "", ""},
		{"equal bounds", &rangeRequest{MinKm: 3, MaxKm: 3}, false, "", ""},
		{"inverted range", &rangeRequest{MinKm: 5, MaxKm: 1}, true, "max_km", "max_km must be greater than or equal to MinKm"},
		{"negative min", &rangeRequest{MinKm: -1, MaxKm: 1}, true, "min_km", "min_km must be greater than or equal to 0"},
		{"valid hike", &hikeRequest{TrailID: "dragons-back", Level: "beginner"}, false, "", ""},
		{"missing trail", &hikeRequest{}, true, "trail_id", "trail_id is required"},
		{"bad identifier", &hikeRequest{TrailID: "Dragon's Back"}, true, "trail_id", "trail_id must be lowercase letters, digits, '-' or '_'"},
		{"bad level", &hikeRequest{TrailID: "a", Level: "expert"}, true, "level", "level must be one of: beginner intermediate advanced"},
		{"long note", &hikeRequest{TrailID: "a", Note: "too long"}, true, "note", "note must be at most 5 characters"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("field = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&hikeRequest{}).ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("code = %q", apiErr.Code)
		}
		if apiErr.Details["field"] != "trail_id" {
			t.Errorf("details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		verr := ValidateStruct(&hikeRequest{Level: "expert", Note: "too long"})
		apiErr := verr.ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 3 {
			t.Fatalf("expected 3 field details, got %v", apiErr.Details)
		}
		if !strings.Contains(apiErr.Message, "; ") {
			t.Errorf("expected joined message, got %q", apiErr.Message)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("message = %q", apiErr.Message)
		}
	})
}

func TestValidIdentifier(t *testing.T) {
	t.Parallel()

	for id, want := range map[string]bool{
		"maclehose-2": true,
		"user_42":     true,
		"":            false,
		"-leading":    false,
		"UPPER":       false,
		"with space":  false,
	} {
		if got := ValidIdentifier(id); got != want {
			t.Errorf("ValidIdentifier(%q) = %v, want %v", id, got, want)
		}
	}
}
