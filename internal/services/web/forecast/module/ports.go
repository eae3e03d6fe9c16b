package module

import (
	"context"

	"meteopage/internal/core/forecast"
	"meteopage/internal/services/web/forecast/domain"
	fsvc "meteopage/internal/services/web/forecast/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptForecastPort struct{ svc fsvc.Service }

// Forecast fetches and decodes once for the configured location
func (a adaptForecastPort) Forecast(ctx context.Context) domain.Result { return a.svc.Forecast(ctx) }

// Codes lists the weather code catalog
func (a adaptForecastPort) Codes() []domain.CodeDTO { return a.svc.Codes() }

// Decode runs the decoder over a caller supplied block
func (a adaptForecastPort) Decode(ctx context.Context, in domain.DecodeInput) []forecast.Entry {
	return a.svc.Decode(ctx, in)
}

// Location reports the configured location
func (a adaptForecastPort) Location() domain.Location { return a.svc.Location() }

var _ domain.ServicePort = adaptForecastPort{}
