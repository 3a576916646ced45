// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Request carries everything a single recommendation pass needs.
// Optional inputs are nil when unknown; the matching factor is then skipped.
type Request struct {
	// Trails is the candidate catalog. Input order is the tie-break order.
	Trails []Trail

	Preference *UserPreference

	Weather *WeatherSnapshot

	// Now is the evaluation instant. Hour-of-day uses Now's location.
	Now time.Time

	// AvailableTime is the caller's time budget.
	AvailableTime *time.Duration

	History []HikeRecord
}

// Engine scores and ranks trails.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	config *Config
}

// NewEngine creates an engine from a validated copy of cfg.
// A nil cfg selects DefaultConfig.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{config: cfg.Clone()}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend scores every trail, drops those at or below the inclusion
// threshold, and returns the rest ordered by score descending. Equal scores
// keep catalog order.
func (e *Engine) Recommend(req Request) []TrailRecommendation {
	results := make([]TrailRecommendation, 0, len(req.Trails))

	for i := range req.Trails {
		b := e.Score(&req.Trails[i], &req)
		if !b.Kept {
			continue
		}
		results = append(results, TrailRecommendation{
			ID:           req.Trails[i].ID,
			Trail:        req.Trails[i],
			Score:        b.Score,
			Reasons:      b.Reasons,
			MatchPercent: matchPercent(b.Score),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Score evaluates a single trail and returns the full breakdown,
// including trails that would be filtered out.
func (e *Engine) Score(trail *Trail, req *Request) Breakdown {
	in := factorInput{trail: trail, text: trailText(trail), req: req}
	w := &e.config.Weights

	b := Breakdown{
		TrailID: trail.ID,
		Deltas:  make(map[Factor]float64, len(FactorOrder)),
		Reasons: []Reason{},
	}

	raw := e.config.BaseScore
	for _, f := range FactorOrder {
		var res factorResult
		switch f {
		case FactorPreference:
			res = w.scorePreference(in, e.config.CapSceneryBonus)
		case FactorWeather:
			res = w.scoreWeather(in)
		case FactorTimeOfDay:
			res = w.scoreTimeOfDay(in)
		case FactorAvailableTime:
			res = w.scoreAvailableTime(in)
		case FactorHistory:
			res = w.scoreHistory(in)
		case FactorDiversity:
			res = w.scoreDiversity(in)
		}
		if res.skipped {
			continue
		}
		raw += res.delta
		b.Deltas[f] = res.delta
		b.Reasons = append(b.Reasons, res.reasons...)
	}

	b.Raw = roundScore(raw)
	b.Score = clamp01(b.Raw)
	b.Kept = b.Score > e.config.MinScore
	return b
}

// roundScore removes accumulated float error so that sums such as
// 0.5-0.1-0.1 compare equal to the threshold they are meant to hit.
func roundScore(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func matchPercent(score float64) int {
	p := int(math.Round(score * 100))
	if p > 100 {
		return 100
	}
	return p
}
