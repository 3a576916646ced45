// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package recommend

import (
	"math"
	"strings"
	"time"
)

// factorInput is the per-trail view handed to each factor function.
type factorInput struct {
	trail *Trail
	text  string // lowercased name + summary
	req   *Request
}

// factorResult is a single factor's signed contribution.
type factorResult struct {
	delta   float64
	reasons []Reason
	skipped bool
}

func (r *factorResult) add(delta float64, reason Reason) {
	r.delta += delta
	if reason != "" {
		r.reasons = append(r.reasons, reason)
	}
}

// scorePreference rewards difficulty, distance, duration and scenery matches.
func (w *FactorWeights) scorePreference(in factorInput, capScenery bool) factorResult {
	pref := in.req.Preference
	if pref == nil {
		return factorResult{skipped: true}
	}

	var res factorResult
	t := in.trail

	if pref.PreferredDifficulty != nil {
		if *pref.PreferredDifficulty == t.Difficulty {
			res.add(w.DifficultyMatch, ReasonDifficultyMatch)
		}
	} else if difficultyIn(t.Difficulty, RecommendedDifficulties(pref.FitnessLevel)) {
		res.add(w.FitnessLevelMatch, ReasonFitnessLevelMatch)
	}

	if pref.Distance != nil && pref.Distance.Contains(t.LengthKm) {
		res.add(w.DistanceMatch, ReasonDistanceMatch)
	}

	if pref.Duration != nil && pref.Duration.Contains(t.DurationMinutes) {
		res.add(w.DurationMatch, ReasonDurationMatch)
	}

	for _, s := range pref.Scenery {
		if !MatchesScenery(s, in.text) {
			continue
		}
		res.add(w.SceneryMatch, ReasonSceneryMatch)
		if capScenery {
			break
		}
	}

	return res
}

// scoreWeather rewards comfortable temperatures and shade on hot days.
// A high UV index is flagged without changing the score.
func (w *FactorWeights) scoreWeather(in factorInput) factorResult {
	wx := in.req.Weather
	if wx == nil {
		return factorResult{skipped: true}
	}

	var res factorResult

	switch {
	case wx.TemperatureC >= w.ComfortMinC && wx.TemperatureC <= w.ComfortMaxC:
		res.add(w.TemperatureGood, ReasonWeatherTemperatureGood)
	case wx.TemperatureC > w.ComfortMaxC && containsAny(in.text, shadeKeywords):
		res.add(w.HotShade, ReasonWeatherHotShade)
	}

	if wx.UVIndex >= w.HighUVIndex {
		res.add(0, ReasonWeatherUVHigh)
	}

	return res
}

// scoreTimeOfDay rewards east-facing routes at dawn and west-facing ones at dusk.
func (w *FactorWeights) scoreTimeOfDay(in factorInput) factorResult {
	var res factorResult

	hour := in.req.Now.Hour()
	switch {
	case hour >= 5 && hour < 9:
		if containsAny(in.text, sunriseKeywords) {
			res.add(w.Sunrise, ReasonTimeSunrise)
		}
	case hour >= 16 && hour < 19:
		if containsAny(in.text, sunsetKeywords) {
			res.add(w.Sunset, ReasonTimeSunset)
		}
	}

	return res
}

// scoreAvailableTime compares the caller's time budget with the trail duration.
// The shortfall penalty carries no reason.
func (w *FactorWeights) scoreAvailableTime(in factorInput) factorResult {
	if in.req.AvailableTime == nil {
		return factorResult{skipped: true}
	}

	var res factorResult
	budget := in.req.AvailableTime.Seconds()
	need := in.trail.Duration().Seconds()

	switch {
	case budget >= need:
		res.add(w.TimeEnough, ReasonTimeEnough)
	case budget >= w.TightRatio*need:
		res.add(w.TimeTight, ReasonTimeTight)
	default:
		res.add(-w.TimeShortPenalty, "")
	}

	return res
}

// scoreHistory rewards novelty, trails the user tends to finish, and lengths
// close to what the user usually completes.
func (w *FactorWeights) scoreHistory(in factorInput) factorResult {
	var res factorResult
	t := in.trail
	history := in.req.History

	similar, completedSimilar := 0, 0
	name := strings.ToLower(t.Name)
	for i := range history {
		h := &history[i]
		if h.TrailID == t.ID || (name != "" && h.TrailName != "" && strings.Contains(strings.ToLower(h.TrailName), name)) {
			similar++
			if h.Completed {
				completedSimilar++
			}
		}
	}

	if similar == 0 {
		res.add(w.NewTrail, ReasonHistoryNewTrail)
	} else if float64(completedSimilar)/float64(similar) > w.OftenCompletedRate {
		res.add(w.OftenCompleted, ReasonHistoryOftenCompleted)
	}

	if mean, ok := meanCompletedDistance(history); ok {
		if math.Abs(t.LengthKm-mean)/mean < w.DistanceSimilarity {
			res.add(w.DistanceSimilar, ReasonHistoryDistanceSimilar)
		}
	}

	return res
}

// scoreDiversity penalizes trails completed recently and gives everything
// else a small bonus. Both adjustments are silent. Without any history there
// is nothing to diversify against and the factor is skipped.
func (w *FactorWeights) scoreDiversity(in factorInput) factorResult {
	if len(in.req.History) == 0 {
		return factorResult{skipped: true}
	}

	var res factorResult
	since := in.req.Now.Add(-w.RepeatWindow)

	for i := range in.req.History {
		h := &in.req.History[i]
		if h.TrailID == in.trail.ID && h.Completed && !h.StartedAt.Before(since) {
			res.add(-w.RepeatPenalty, "")
			return res
		}
	}

	res.add(w.DiversityBonus, "")
	return res
}

// meanCompletedDistance averages the distance of completed hikes.
// ok is false when there are none or the mean is not positive.
func meanCompletedDistance(history []HikeRecord) (mean float64, ok bool) {
	var sum float64
	n := 0
	for i := range history {
		if history[i].Completed {
			sum += history[i].DistanceKm
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	mean = sum / float64(n)
	return mean, mean > 0
}

func difficultyIn(d Difficulty, set []Difficulty) bool {
	for _, x := range set {
		if x == d {
			return true
		}
	}
	return false
}

// thirtyDays is the default look-back for repetition.
const thirtyDays = 30 * 24 * time.Hour
