// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.BaseScore != 0.5 || cfg.MinScore != 0.3 {
		t.Errorf("base/min = %v/%v, want 0.5/0.3", cfg.BaseScore, cfg.MinScore)
	}
	if cfg.CapSceneryBonus {
		t.Error("scenery bonus should be uncapped by default")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"base above one", func(c *Config) { c.BaseScore = 1.2 }, "base_score"},
		{"min score one", func(c *Config) { c.MinScore = 1 }, "min_score"},
		{"negative weight", func(c *Config) { c.Weights.SceneryMatch = -0.1 }, "scenery_match"},
		{"weight above one", func(c *Config) { c.Weights.RepeatPenalty = 1.5 }, "repeat_penalty"},
		{"inverted comfort range", func(c *Config) { c.Weights.ComfortMinC = 30 }, "comfort_min_c"},
		{"negative uv", func(c *Config) { c.Weights.HighUVIndex = -1 }, "high_uv_index"},
		{"zero tight ratio", func(c *Config) { c.Weights.TightRatio = 0 }, "tight_ratio"},
		{"completion rate above one", func(c *Config) { c.Weights.OftenCompletedRate = 2 }, "often_completed_rate"},
		{"zero similarity", func(c *Config) { c.Weights.DistanceSimilarity = 0 }, "distance_similarity"},
		{"zero window", func(c *Config) { c.Weights.RepeatWindow = 0 }, "repeat_window"},
		{"max weights allowed", func(c *Config) { c.Weights.TimeShortPenalty = 1 }, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	orig := DefaultConfig()
	cp := orig.Clone()
	cp.Weights.DifficultyMatch = 0.9
	cp.MinScore = 0.1

	if orig.Weights.DifficultyMatch != 0.20 || orig.MinScore != 0.3 {
		t.Error("Clone shares state with the original")
	}
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine(nil) = %v", err)
	}
	if e.Config().MinScore != 0.3 {
		t.Errorf("nil config should select defaults, got min %v", e.Config().MinScore)
	}

	bad := DefaultConfig()
	bad.MinScore = -1
	if _, err := NewEngine(bad); err == nil {
		t.Error("NewEngine accepted an invalid config")
	}

	cfg := DefaultConfig()
	e, err = NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine = %v", err)
	}
	cfg.MinScore = 0.9
	e.Config().MinScore = 0.8
	if e.Config().MinScore != 0.3 {
		t.Error("engine config is not isolated from callers")
	}
}
