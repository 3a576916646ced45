// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import (
	"math"
	"testing"
	"time"
)

// testNow is midday, outside both the sunrise and sunset windows.
var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// newTrail builds a trail whose name contains no scenery or marker keyword.
func newTrail(id string, km float64, minutes int, d Difficulty) Trail {
	return Trail{
		ID:              id,
		Name:            "Route " + id,
		LengthKm:        km,
		DurationMinutes: minutes,
		Difficulty:      d,
	}
}

func newTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func ptr[T any](v T) *T {
	return &v
}

func minutes(n int) *time.Duration {
	d := time.Duration(n) * time.Minute
	return &d
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func reasonsEqual(got, want []Reason) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
