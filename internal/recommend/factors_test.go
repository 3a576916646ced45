// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import (
	"testing"
	"time"
)

func input(t *Trail, req *Request) factorInput {
	return factorInput{trail: t, text: trailText(t), req: req}
}

func TestScorePreference(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	easy := DifficultyEasy

	tests := []struct {
		name        string
		trail       Trail
		pref        *UserPreference
		capScenery  bool
		wantDelta   float64
		wantReasons []Reason
		wantSkipped bool
	}{
		{
			name:        "no preference skips",
			trail:       newTrail("a", 5, 90, DifficultyEasy),
			wantSkipped: true,
		},
		{
			name:        "explicit difficulty match",
			trail:       newTrail("a", 5, 90, DifficultyEasy),
			pref:        &UserPreference{PreferredDifficulty: &easy},
			wantDelta:   0.20,
			wantReasons: []Reason{ReasonDifficultyMatch},
		},
		{
			name:  "explicit difficulty mismatch ignores fitness",
			trail: newTrail("a", 5, 90, DifficultyModerate),
			pref: &UserPreference{
				PreferredDifficulty: &easy,
				FitnessLevel:        FitnessIntermediate,
			},
			wantDelta: 0,
		},
		{
			name:        "fitness level match",
			trail:       newTrail("a", 5, 90, DifficultyModerate),
			pref:        &UserPreference{FitnessLevel: FitnessAdvanced},
			wantDelta:   0.15,
			wantReasons: []Reason{ReasonFitnessLevelMatch},
		},
		{
			name:      "beginner excludes challenging",
			trail:     newTrail("a", 5, 90, DifficultyChallenging),
			pref:      &UserPreference{FitnessLevel: FitnessBeginner},
			wantDelta: 0,
		},
		{
			name:  "distance and duration bounds inclusive",
			trail: newTrail("a", 10, 60, DifficultyEasy),
			pref: &UserPreference{
				Distance: &DistanceRange{MinKm: 5, MaxKm: 10},
				Duration: &DurationRange{MinMinutes: 60, MaxMinutes: 120},
			},
			wantDelta:   0.30,
			wantReasons: []Reason{ReasonDistanceMatch, ReasonDurationMatch},
		},
		{
			name: "scenery counts each matching category",
			trail: Trail{
				ID: "a", Name: "Coastal Ridge", Summary: "sea views from the summit",
				LengthKm: 5, DurationMinutes: 90, Difficulty: DifficultyEasy,
			},
			pref:        &UserPreference{Scenery: []Scenery{ScenerySea, SceneryMountain, SceneryReservoir}},
			wantDelta:   0.20,
			wantReasons: []Reason{ReasonSceneryMatch, ReasonSceneryMatch},
		},
		{
			name: "scenery capped to one award",
			trail: Trail{
				ID: "a", Name: "Coastal Ridge", Summary: "sea views from the summit",
				LengthKm: 5, DurationMinutes: 90, Difficulty: DifficultyEasy,
			},
			pref:        &UserPreference{Scenery: []Scenery{ScenerySea, SceneryMountain}},
			capScenery:  true,
			wantDelta:   0.10,
			wantReasons: []Reason{ReasonSceneryMatch},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := &Request{Preference: tt.pref, Now: testNow}
			res := w.scorePreference(input(&tt.trail, req), tt.capScenery)

			if res.skipped != tt.wantSkipped {
				t.Fatalf("skipped = %v, want %v", res.skipped, tt.wantSkipped)
			}
			if !approxEqual(res.delta, tt.wantDelta) {
				t.Errorf("delta = %v, want %v", res.delta, tt.wantDelta)
			}
			if !reasonsEqual(res.reasons, tt.wantReasons) {
				t.Errorf("reasons = %v, want %v", res.reasons, tt.wantReasons)
			}
		})
	}
}

func TestScoreWeather(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	plain := newTrail("a", 5, 90, DifficultyEasy)
	shaded := Trail{ID: "b", Name: "Stream Walk", Summary: "waterfall and forest", Difficulty: DifficultyEasy}

	tests := []struct {
		name        string
		trail       Trail
		weather     *WeatherSnapshot
		wantDelta   float64
		wantReasons []Reason
		wantSkipped bool
	}{
		{"no weather skips", plain, nil, 0, nil, true},
		{"comfortable lower bound", plain, &WeatherSnapshot{TemperatureC: 15}, 0.10, []Reason{ReasonWeatherTemperatureGood}, false},
		{"comfortable upper bound", plain, &WeatherSnapshot{TemperatureC: 25}, 0.10, []Reason{ReasonWeatherTemperatureGood}, false},
		{"cold gives nothing", plain, &WeatherSnapshot{TemperatureC: 10}, 0, nil, false},
		{"hot without shade", plain, &WeatherSnapshot{TemperatureC: 31}, 0, nil, false},
		{"hot with shade", shaded, &WeatherSnapshot{TemperatureC: 31}, 0.05, []Reason{ReasonWeatherHotShade}, false},
		{"high uv is reason only", plain, &WeatherSnapshot{TemperatureC: 10, UVIndex: 8}, 0, []Reason{ReasonWeatherUVHigh}, false},
		{
			"comfortable and high uv", plain, &WeatherSnapshot{TemperatureC: 20, UVIndex: 11},
			0.10, []Reason{ReasonWeatherTemperatureGood, ReasonWeatherUVHigh}, false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := &Request{Weather: tt.weather, Now: testNow}
			res := w.scoreWeather(input(&tt.trail, req))

			if res.skipped != tt.wantSkipped {
				t.Fatalf("skipped = %v, want %v", res.skipped, tt.wantSkipped)
			}
			if !approxEqual(res.delta, tt.wantDelta) {
				t.Errorf("delta = %v, want %v", res.delta, tt.wantDelta)
			}
			if !reasonsEqual(res.reasons, tt.wantReasons) {
				t.Errorf("reasons = %v, want %v", res.reasons, tt.wantReasons)
			}
		})
	}
}

func TestScoreTimeOfDay(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	dawn := Trail{ID: "a", Name: "Sunrise Point", Difficulty: DifficultyEasy}
	dusk := Trail{ID: "b", Name: "西貢 Lookout", Difficulty: DifficultyEasy}
	at := func(h, m int) time.Time { return time.Date(2026, 3, 14, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name   string
		trail  Trail
		now    time.Time
		reason Reason
	}{
		{"dawn window start", dawn, at(5, 0), ReasonTimeSunrise},
		{"dawn window end exclusive", dawn, at(9, 0), ""},
		{"dawn trail at dusk", dawn, at(17, 0), ""},
		{"dusk window start", dusk, at(16, 0), ReasonTimeSunset},
		{"dusk last minute", dusk, at(18, 59), ReasonTimeSunset},
		{"dusk window end exclusive", dusk, at(19, 0), ""},
		{"dusk trail at dawn", dusk, at(6, 0), ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := w.scoreTimeOfDay(input(&tt.trail, &Request{Now: tt.now}))
			if res.skipped {
				t.Fatal("time of day is never skipped")
			}
			if tt.reason == "" {
				if res.delta != 0 || len(res.reasons) != 0 {
					t.Errorf("got delta %v reasons %v, want none", res.delta, res.reasons)
				}
				return
			}
			if !approxEqual(res.delta, 0.10) || !reasonsEqual(res.reasons, []Reason{tt.reason}) {
				t.Errorf("got delta %v reasons %v, want 0.10 %v", res.delta, res.reasons, tt.reason)
			}
		})
	}
}

func TestScoreTimeOfDayUsesLocation(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	dawn := Trail{ID: "a", Name: "Sunrise Point", Difficulty: DifficultyEasy}
	hk := time.FixedZone("HKT", 8*60*60)

	// 22:30 UTC is 06:30 the next morning in Hong Kong.
	now := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)

	if res := w.scoreTimeOfDay(input(&dawn, &Request{Now: now})); len(res.reasons) != 0 {
		t.Errorf("UTC evening should not be dawn, got %v", res.reasons)
	}
	if res := w.scoreTimeOfDay(input(&dawn, &Request{Now: now.In(hk)})); !reasonsEqual(res.reasons, []Reason{ReasonTimeSunrise}) {
		t.Errorf("HKT dawn should match, got %v", res.reasons)
	}
}

func TestScoreAvailableTime(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	tr := newTrail("a", 5, 100, DifficultyEasy)

	tests := []struct {
		name        string
		budget      *time.Duration
		wantDelta   float64
		wantReasons []Reason
		wantSkipped bool
	}{
		{"no budget skips", nil, 0, nil, true},
		{"exactly enough", minutes(100), 0.10, []Reason{ReasonTimeEnough}, false},
		{"plenty", minutes(300), 0.10, []Reason{ReasonTimeEnough}, false},
		{"tight at seventy percent", minutes(70), 0.05, []Reason{ReasonTimeTight}, false},
		{"short penalty is silent", minutes(69), -0.10, nil, false},
		{"forty percent", minutes(40), -0.10, nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := w.scoreAvailableTime(input(&tr, &Request{AvailableTime: tt.budget, Now: testNow}))
			if res.skipped != tt.wantSkipped {
				t.Fatalf("skipped = %v, want %v", res.skipped, tt.wantSkipped)
			}
			if !approxEqual(res.delta, tt.wantDelta) {
				t.Errorf("delta = %v, want %v", res.delta, tt.wantDelta)
			}
			if !reasonsEqual(res.reasons, tt.wantReasons) {
				t.Errorf("reasons = %v, want %v", res.reasons, tt.wantReasons)
			}
		})
	}
}

func TestScoreHistory(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	tr := Trail{ID: "dragons-back", Name: "Dragon's Back", LengthKm: 8.5, DurationMinutes: 180, Difficulty: DifficultyModerate}
	day := 24 * time.Hour

	tests := []struct {
		name        string
		history     []HikeRecord
		wantDelta   float64
		wantReasons []Reason
	}{
		{
			name:        "empty history is new",
			wantDelta:   0.10,
			wantReasons: []Reason{ReasonHistoryNewTrail},
		},
		{
			name: "other trails only, distance far",
			history: []HikeRecord{
				{TrailID: "x", StartedAt: testNow.Add(-day), Completed: true, DistanceKm: 20},
			},
			wantDelta:   0.10,
			wantReasons: []Reason{ReasonHistoryNewTrail},
		},
		{
			name: "new trail with similar distance",
			history: []HikeRecord{
				{TrailID: "x", StartedAt: testNow.Add(-day), Completed: true, DistanceKm: 8},
				{TrailID: "y", StartedAt: testNow.Add(-2 * day), Completed: true, DistanceKm: 9},
			},
			wantDelta:   0.20,
			wantReasons: []Reason{ReasonHistoryNewTrail, ReasonHistoryDistanceSimilar},
		},
		{
			name: "often completed by id",
			history: []HikeRecord{
				{TrailID: "dragons-back", StartedAt: testNow.Add(-day), Completed: true, DistanceKm: 30},
				{TrailID: "dragons-back", StartedAt: testNow.Add(-2 * day), Completed: true, DistanceKm: 30},
			},
			wantDelta:   0.15,
			wantReasons: []Reason{ReasonHistoryOftenCompleted},
		},
		{
			name: "matched by name when id is stale",
			history: []HikeRecord{
				{TrailID: "old-id", TrailName: "Dragon's Back (Shek O)", StartedAt: testNow.Add(-day), Completed: true, DistanceKm: 8.5},
			},
			wantDelta:   0.25,
			wantReasons: []Reason{ReasonHistoryOftenCompleted, ReasonHistoryDistanceSimilar},
		},
		{
			name: "low completion rate gives nothing",
			history: []HikeRecord{
				{TrailID: "dragons-back", StartedAt: testNow.Add(-day), Completed: false},
				{TrailID: "dragons-back", StartedAt: testNow.Add(-2 * day), Completed: true, DistanceKm: 1},
			},
			wantDelta: 0,
		},
		{
			name: "zero mean distance is ignored",
			history: []HikeRecord{
				{TrailID: "x", StartedAt: testNow.Add(-day), Completed: true, DistanceKm: 0},
			},
			wantDelta:   0.10,
			wantReasons: []Reason{ReasonHistoryNewTrail},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := w.scoreHistory(input(&tr, &Request{History: tt.history, Now: testNow}))
			if res.skipped {
				t.Fatal("history is never skipped")
			}
			if !approxEqual(res.delta, tt.wantDelta) {
				t.Errorf("delta = %v, want %v", res.delta, tt.wantDelta)
			}
			if !reasonsEqual(res.reasons, tt.wantReasons) {
				t.Errorf("reasons = %v, want %v", res.reasons, tt.wantReasons)
			}
		})
	}
}

func TestScoreDiversity(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	tr := newTrail("a", 5, 90, DifficultyEasy)
	day := 24 * time.Hour

	tests := []struct {
		name        string
		history     []HikeRecord
		wantDelta   float64
		wantSkipped bool
	}{
		{name: "empty history skips", wantSkipped: true},
		{
			name:      "other trails give bonus",
			history:   []HikeRecord{{TrailID: "b", StartedAt: testNow.Add(-day), Completed: true}},
			wantDelta: 0.05,
		},
		{
			name:      "incomplete repeat gives bonus",
			history:   []HikeRecord{{TrailID: "a", StartedAt: testNow.Add(-day), Completed: false}},
			wantDelta: 0.05,
		},
		{
			name:      "completed outside window gives bonus",
			history:   []HikeRecord{{TrailID: "a", StartedAt: testNow.Add(-31 * day), Completed: true}},
			wantDelta: 0.05,
		},
		{
			name:      "completed at window edge penalized",
			history:   []HikeRecord{{TrailID: "a", StartedAt: testNow.Add(-30 * day), Completed: true}},
			wantDelta: -0.10,
		},
		{
			name: "two recent completions penalized once",
			history: []HikeRecord{
				{TrailID: "a", StartedAt: testNow.Add(-2 * day), Completed: true},
				{TrailID: "a", StartedAt: testNow.Add(-9 * day), Completed: true},
			},
			wantDelta: -0.10,
		},
		{
			name: "name match does not count as repeat",
			history: []HikeRecord{
				{TrailID: "other", TrailName: "Route a", StartedAt: testNow.Add(-day), Completed: true},
			},
			wantDelta: 0.05,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := w.scoreDiversity(input(&tr, &Request{History: tt.history, Now: testNow}))
			if res.skipped != tt.wantSkipped {
				t.Fatalf("skipped = %v, want %v", res.skipped, tt.wantSkipped)
			}
			if !approxEqual(res.delta, tt.wantDelta) {
				t.Errorf("delta = %v, want %v", res.delta, tt.wantDelta)
			}
			if len(res.reasons) != 0 {
				t.Errorf("diversity must be silent, got %v", res.reasons)
			}
		})
	}
}
