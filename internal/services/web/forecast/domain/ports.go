package domain

import (
	"context"

	"meteopage/internal/core/forecast"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// Forecast fetches and decodes once, a failure settles the load instead of erroring
	Forecast(ctx context.Context) Result
	// Codes lists the catalog in ascending code order
	Codes() []CodeDTO
	// Decode runs the decoder over a caller supplied block
	Decode(ctx context.Context, in DecodeInput) []forecast.Entry
	// Location reports where forecasts are fetched for
	Location() Location
}
