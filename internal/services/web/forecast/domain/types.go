// Package domain holds the forecast module's transport types and ports
package domain

import "meteopage/internal/core/forecast"

// Location is the place every forecast is fetched for
type Location struct {
	Name      string  `json:"name"      validate:"required"          example:"Paris"`
	Latitude  float64 `json:"latitude"  validate:"latitude"          example:"48.8534"`
	Longitude float64 `json:"longitude" validate:"longitude"         example:"2.3488"`
	Timezone  string  `json:"timezone"  validate:"required,timezone" example:"Europe/Berlin"`
}

// Result is one settled forecast load and where it was fetched for
type Result struct {
	forecast.Load
	Location Location
}

// EntryDTO is one day on the wire
type EntryDTO struct {
	Date        string `json:"date"        example:"2024-05-30"`
	Label       string `json:"label"       example:"5/30/2024"`
	Code        int    `json:"code"        example:"61"`
	Description string `json:"description" example:"Rain: Slight intensity"`
}

// ForecastResponse is the JSON forecast payload
type ForecastResponse struct {
	Location  Location   `json:"location"`
	LoadID    string     `json:"load_id"    example:"5b1e7a2c-3f0e-4b8e-9a43-0c6f1d2e9b11"`
	ElapsedMS int64      `json:"elapsed_ms" example:"182"`
	Entries   []EntryDTO `json:"entries"`
}

// CodeDTO is one catalog row
type CodeDTO struct {
	Code        int    `json:"code"        example:"45"`
	Description string `json:"description" example:"Fog"`
}

// DecodeInput is a caller supplied daily block
// a malformed range is accepted and decodes to nothing
type DecodeInput struct {
	UTCOffsetSeconds int64 `json:"utc_offset_seconds" validate:"min=-86400,max=86400" example:"7200"`
	Start            int64 `json:"start"              example:"1717020000"`
	End              int64 `json:"end"                example:"1717279200"`
	Step             int64 `json:"step"               example:"86400"`
	Codes            []int `json:"codes"              validate:"max=1000"             example:"3,61,95"`
}

// Range returns the packed time range of in
func (in DecodeInput) Range() forecast.TimeRange {
	return forecast.TimeRange{Start: in.Start, End: in.End, Step: in.Step}
}

// DecodeResponse reports the decoded entries and how the input lined up
type DecodeResponse struct {
	Expected int        `json:"expected" example:"3"`
	Entries  []EntryDTO `json:"entries"`
}
