// Package module wires meta endpoints into the API using a tiny module
package module

import (
	modkit "meteopage/internal/modkit"
	"meteopage/internal/modkit/httpkit"
	"meteopage/internal/modkit/module"

	"meteopage/internal/services/web/forecast/domain"
	metahttp "meteopage/internal/services/web/meta/http"
)

// Module serves health, readiness, version and service info
type Module struct{ modkit.Base }

// New constructs a meta module, uptime counts from this call
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	d := metahttp.Deps{
		ServiceName: "meteopage-web",
		StartedAt:   deps.Now(),
		Clock:       deps.Now,
		Forecast:    forecastPort,
	}
	return &Module{b.Base(func(r httpkit.Router) { metahttp.Register(r, d) })}
}

// forecastPort reads the registry on each call since meta mounts before forecast registers
func forecastPort() (domain.ServicePort, bool) {
	return module.PortsAs[domain.ServicePort]("forecast")
}

// Ports is nil, meta exposes nothing to other modules
func (*Module) Ports() any { return nil }
