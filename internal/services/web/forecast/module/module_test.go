package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"meteopage/internal/core/forecast"
	modkit "meteopage/internal/modkit"
	"meteopage/internal/modkit/module"
	"meteopage/internal/platform/config"
	phttp "meteopage/internal/platform/net/http"
	kit "meteopage/internal/platform/testkit"
	"meteopage/internal/services/web/forecast/domain"

	"github.com/go-chi/chi/v5"
)

func oneDay() forecast.Source {
	s := forecast.Static{
		Offset: 0,
		Range:  forecast.TimeRange{Start: 1717027200, End: 1717027200 + 86400, Step: 86400},
		Vars:   [][]float64{{45}},
	}
	return forecast.SourceFunc(func(context.Context) (forecast.Series, error) { return s, nil })
}

func newModule(t *testing.T, opts ...modkit.Option) modkit.Module {
	t.Helper()
	deps := modkit.Deps{Cfg: config.New()}
	return New(deps, append([]modkit.Option{modkit.WithPorts(Ports{Source: oneDay()})}, opts...)...)
}

func TestNew_Defaults(t *testing.T) {
	m := newModule(t)
	if m.Name() != "forecast" {
		t.Fatalf("name = %q", m.Name())
	}
	if p := m.(*Module).Prefix(); p != "/forecast" {
		t.Fatalf("prefix = %q", p)
	}
	if _, ok := m.(module.PageModule); !ok {
		t.Fatalf("forecast module should serve pages")
	}
}

func TestMount_RoutesAndPages(t *testing.T) {
	m := newModule(t)
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/api/v1", func(api phttp.Router) { m.MountRoutes(api) })
	m.(module.PageModule).MountPages(r)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/forecast", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("api status = %d body=%s", rec.Code, rec.Body.String())
	}
	kit.MustContain(t, rec.Body.String(), `"description":"Fog"`)

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	kit.MustOrder(t, rec.Body.String(), "Weather Forecast for Paris", "Loading weather data", "<li>5/30/2024: Fog</li>")

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/client", nil))
	kit.MustContain(t, rec.Body.String(), `"/api/v1/forecast"`)
}

func TestPorts_ExposeService(t *testing.T) {
	m := newModule(t)
	p, ok := m.Ports().(domain.ServicePort)
	if !ok {
		t.Fatalf("ports = %T", m.Ports())
	}
	if p.Location().Name != "Paris" {
		t.Fatalf("location = %+v", p.Location())
	}
	res := p.Forecast(context.Background())
	if res.Status != forecast.StatusResolved || len(res.Entries) != 1 {
		t.Fatalf("forecast = %+v", res)
	}
	if len(p.Codes()) != 28 {
		t.Fatalf("codes = %d", len(p.Codes()))
	}
}

func TestNew_ExternalRegisterRuns(t *testing.T) {
	hit := false
	m := newModule(t, modkit.WithRegister(func(r phttp.Router) {
		r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { hit = true })
	}))
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	r.Mux().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/forecast/extra", nil))
	if !hit {
		t.Fatalf("external register not mounted")
	}
}
