// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package weather

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/trailhead/internal/recommend"
)

// hkoReport is the subset of the Hong Kong Observatory "rhrread" (current
// weather report) payload we use. Several fields are an empty string
// instead of an object or list when there is nothing to report.
type hkoReport struct {
	Temperature    hkoReadings     `json:"temperature"`
	Humidity       hkoReadings     `json:"humidity"`
	UVIndex        json.RawMessage `json:"uvindex"`
	WarningMessage json.RawMessage `json:"warningMessage"`
	UpdateTime     string          `json:"updateTime"`
}

type hkoReadings struct {
	Data       []hkoReading `json:"data"`
	RecordTime string       `json:"recordTime"`
}

type hkoReading struct {
	Place string  `json:"place"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Desc  string  `json:"desc,omitempty"`
}

// parseReport converts a raw payload to a snapshot for the given station.
// Humidity and UV fall back to the first reading when the station does not
// report them.
func parseReport(body []byte, station string) (*recommend.WeatherSnapshot, error) {
	var r hkoReport
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("decode weather report: %w", err)
	}

	temp, ok := pick(r.Temperature.Data, station, false)
	if !ok {
		return nil, fmt.Errorf("no temperature reading for station %q", station)
	}

	snap := &recommend.WeatherSnapshot{
		Location:     temp.Place,
		TemperatureC: temp.Value,
	}

	if h, ok := pick(r.Humidity.Data, station, true); ok {
		snap.HumidityPct = int(h.Value)
	}

	if uv, err := decodeOptional[hkoReadings](r.UVIndex); err != nil {
		return nil, fmt.Errorf("decode uv index: %w", err)
	} else if reading, ok := pick(uv.Data, station, true); ok {
		snap.UVIndex = int(reading.Value)
	}

	warnings, err := decodeOptional[[]string](r.WarningMessage)
	if err != nil {
		return nil, fmt.Errorf("decode warning message: %w", err)
	}
	snap.Warning = strings.TrimSpace(strings.Join(warnings, " "))

	snap.UpdatedAt, err = time.Parse(time.RFC3339, r.UpdateTime)
	if err != nil {
		return nil, fmt.Errorf("parse update time %q: %w", r.UpdateTime, err)
	}

	snap.Suggestion = SuggestionKey(snap)
	return snap, nil
}

// pick returns the reading for station, or the first reading when
// anyPlace is set and the station is absent.
func pick(data []hkoReading, station string, anyPlace bool) (hkoReading, bool) {
	for _, d := range data {
		if strings.EqualFold(d.Place, station) {
			return d, true
		}
	}
	if anyPlace && len(data) > 0 {
		return data[0], true
	}
	return hkoReading{}, false
}

// decodeOptional decodes raw into T, treating null and "" as the zero value.
func decodeOptional[T any](raw json.RawMessage) (T, error) {
	var v T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return v, nil
	}
	err := json.Unmarshal(trimmed, &v)
	return v, err
}
