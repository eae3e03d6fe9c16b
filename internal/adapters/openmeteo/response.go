package openmeteo

import (
	"encoding/json"
	"fmt"
	"math"

	"meteopage/internal/core/forecast"
)

// DayStep is the spacing of the daily series, the JSON payload does not carry one
const DayStep int64 = 86400

// Response is a decoded forecast payload, it satisfies forecast.Series
type Response struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	UTCOffset int64   `json:"utc_offset_seconds"`

	times []int64
	vars  [][]float64
}

type wireResponse struct {
	Latitude  float64                    `json:"latitude"`
	Longitude float64                    `json:"longitude"`
	Timezone  string                     `json:"timezone"`
	UTCOffset int64                      `json:"utc_offset_seconds"`
	Daily     map[string]json.RawMessage `json:"daily"`
}

// decodeResponse reads raw and keeps the daily columns named in order, nulls become NaN
func decodeResponse(raw []byte, order []string) (*Response, error) {
	var w wireResponse
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	out := &Response{
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		Timezone:  w.Timezone,
		UTCOffset: w.UTCOffset,
	}
	if t, ok := w.Daily["time"]; ok {
		if err := json.Unmarshal(t, &out.times); err != nil {
			return nil, fmt.Errorf("daily.time: %w", err)
		}
	}
	out.vars = make([][]float64, len(order))
	for i, name := range order {
		col, ok := w.Daily[name]
		if !ok {
			continue
		}
		var vals []*float64
		if err := json.Unmarshal(col, &vals); err != nil {
			return nil, fmt.Errorf("daily.%s: %w", name, err)
		}
		f := make([]float64, len(vals))
		for j, v := range vals {
			if v == nil {
				f[j] = math.NaN()
				continue
			}
			f[j] = *v
		}
		out.vars[i] = f
	}
	return out, nil
}

// UTCOffsetSeconds implements forecast.Series
func (r *Response) UTCOffsetSeconds() int64 { return r.UTCOffset }

// Daily implements forecast.Series
// the range starts at the first timestamp and spans one DayStep per timestamp
func (r *Response) Daily() forecast.TimeRange {
	if len(r.times) == 0 {
		return forecast.TimeRange{Step: DayStep}
	}
	start := r.times[0]
	return forecast.TimeRange{
		Start: start,
		End:   start + int64(len(r.times))*DayStep,
		Step:  DayStep,
	}
}

// Variable implements forecast.Series, absent when the provider left the column out
func (r *Response) Variable(i int) ([]float64, bool) {
	if i < 0 || i >= len(r.vars) || r.vars[i] == nil {
		return nil, false
	}
	return r.vars[i], true
}

var _ forecast.Series = (*Response)(nil)
