// Package http provides meta endpoints
package http

import (
	"fmt"
	"net/http"
	"time"

	"meteopage/internal/core/version"
	"meteopage/internal/modkit/httpkit"
	ptime "meteopage/internal/platform/time"
	"meteopage/internal/services/web/forecast/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Clock       ptime.Clock

	// Forecast resolves the forecast module's port at request time, nil skips the check
	Forecast func() (domain.ServicePort, bool)
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Clock == nil {
		d.Clock = ptime.System
	}
	h := meta(d)
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

type meta Deps

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"meteopage-web"`
	Started string `json:"started" example:"2024-05-30T06:00:00Z"`
	Now     string `json:"now"     example:"2024-05-30T08:00:00Z"`
}

// ReadyCheck is one wiring check, Status is ok, fail or skipped
type ReadyCheck struct {
	Name   string `json:"name"             example:"forecast"`
	Status string `json:"status"           example:"ok"`
	Detail string `json:"detail,omitempty" example:"Paris"`
	Error  string `json:"error,omitempty"  example:"forecast port not registered"`
}

// ReadyResponse folds the checks into ok, degraded or fail
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2024-05-30T08:00:00Z"`
}

// ServiceResponse is the service name and uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"meteopage-web"`
	Started string `json:"started" example:"2024-05-30T06:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"7200"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h meta) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(h.Clock())}, nil
}

// @Summary Readiness with wiring checks, never calls the weather provider
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h meta) ready(*http.Request) (any, error) {
	checks := h.checks()
	return ReadyResponse{Status: overall(checks), Checks: checks, Now: stamp(h.Clock())}, nil
}

// checks inspects the forecast port, the catalog check needs the port so it is skipped with it
func (h meta) checks() []ReadyCheck {
	fc := ReadyCheck{Name: "forecast", Status: "skipped"}
	cat := ReadyCheck{Name: "catalog", Status: "skipped"}
	if h.Forecast == nil {
		return []ReadyCheck{fc, cat}
	}

	p, ok := h.Forecast()
	if !ok || p == nil {
		fc.Status, fc.Error = "fail", "forecast port not registered"
		return []ReadyCheck{fc, cat}
	}
	fc.Status, fc.Detail = "ok", p.Location().Name

	if n := len(p.Codes()); n > 0 {
		cat.Status, cat.Detail = "ok", fmt.Sprintf("%d codes", n)
	} else {
		cat.Status, cat.Error = "fail", "weather code catalog is empty"
	}
	return []ReadyCheck{fc, cat}
}

// overall is fail if any check failed, degraded if any was skipped
func overall(checks []ReadyCheck) string {
	out := "ok"
	for _, c := range checks {
		if c.Status == "fail" {
			return "fail"
		}
		if c.Status == "skipped" {
			out = "degraded"
		}
	}
	return out
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (meta) version(*http.Request) (any, error) { return version.Info(), nil }

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h meta) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(h.Clock().Sub(h.StartedAt) / time.Second),
	}, nil
}
