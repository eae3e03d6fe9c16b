// Package module wires the forecast pages and endpoints using modkit
package module

import (
	"meteopage/internal/adapters/openmeteo"
	"meteopage/internal/core/forecast"
	"meteopage/internal/core/wmo"
	modkit "meteopage/internal/modkit"
	"meteopage/internal/modkit/httpkit"

	fhttp "meteopage/internal/services/web/forecast/http"
	fsvc "meteopage/internal/services/web/forecast/service"
)

// Module serves the forecast API under its prefix and the two html pages at the root
type Module struct {
	modkit.Base

	opts  Options
	svc   fsvc.Service
	ports adaptForecastPort
}

// Ports declares what callers may inject, a nil Source means the provider is built from config
type Ports struct {
	Source forecast.Source
}

// New constructs the forecast module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("forecast"),
		modkit.WithPrefix("/forecast"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	injected, _ := b.Ports.(Ports)
	src := injected.Source
	if src == nil {
		src = openmeteo.Pin(openmeteo.NewFetcher(cfg.Provider), cfg.Query())
	}
	svc := fsvc.New(src, wmo.Standard(), cfg.Location, fsvc.WithClock(deps.Now))

	return &Module{
		Base:  b.Base(func(r httpkit.Router) { fhttp.Register(r, svc) }),
		opts:  cfg,
		svc:   svc,
		ports: adaptForecastPort{svc: svc},
	}
}

// MountPages mounts the html pages at the router root
func (m *Module) MountPages(r httpkit.Router) {
	fhttp.RegisterPages(r, m.svc, fhttp.PageDeps{APIPath: m.opts.APIPath})
}
