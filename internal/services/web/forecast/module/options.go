package module

import (
	"meteopage/internal/adapters/openmeteo"
	"meteopage/internal/platform/config"
	"meteopage/internal/platform/logger"
	"meteopage/internal/platform/net/http/bind"
	"meteopage/internal/services/web/forecast/domain"
)

// Options holds configuration settings for the forecast module
type Options struct {
	Location domain.Location
	Provider openmeteo.Config
	// APIPath is the JSON endpoint the client page fetches
	APIPath string
}

// FromConfig reads FORECAST_ and OPENMETEO_ settings, an invalid location panics
func FromConfig(cfg config.Conf) Options {
	fc := cfg.Prefix("FORECAST_")
	loc := domain.Location{
		Name:      fc.MayString("NAME", "Paris"),
		Latitude:  fc.MayFloat64("LATITUDE", 48.8534),
		Longitude: fc.MayFloat64("LONGITUDE", 2.3488),
		Timezone:  fc.MayString("TIMEZONE", "Europe/Berlin"),
	}
	if err := bind.Struct(loc); err != nil {
		logger.Get().Panic().Err(err).Str("name", loc.Name).Msg("invalid forecast location")
	}
	return Options{
		Location: loc,
		Provider: openmeteo.FromConfig(cfg),
		APIPath:  fc.MayString("API_PATH", "/api/v1/forecast"),
	}
}

// Query is the provider request for the configured location
func (o Options) Query() openmeteo.Query {
	return openmeteo.Query{
		Latitude:  o.Location.Latitude,
		Longitude: o.Location.Longitude,
		Timezone:  o.Location.Timezone,
		Daily:     []string{openmeteo.WeatherCode},
	}
}
