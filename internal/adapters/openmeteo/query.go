package openmeteo

import (
	"net/url"
	"strconv"
	"strings"

	"meteopage/internal/platform/net/http/bind"
)

// WeatherCode is the daily variable holding WMO weather codes
const WeatherCode = "weather_code"

// Query is the fixed parameter set sent on every forecast request
type Query struct {
	Latitude  float64  `json:"latitude"  validate:"latitude"`
	Longitude float64  `json:"longitude" validate:"longitude"`
	Timezone  string   `json:"timezone"  validate:"required,timezone"`
	Daily     []string `json:"daily"     validate:"min=1,dive,required"`
}

// Validate checks coordinates, the IANA zone and the variable list
func (q Query) Validate() error {
	return bind.Struct(q)
}

// Values encodes q as forecast endpoint parameters, times come back as unix seconds
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	v.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	v.Set("timezone", q.Timezone)
	v.Set("daily", strings.Join(q.Daily, ","))
	v.Set("timeformat", "unixtime")
	return v
}
