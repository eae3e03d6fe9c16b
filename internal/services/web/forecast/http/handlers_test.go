package http

import (
	"context"
	"math"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meteopage/internal/core/forecast"
	"meteopage/internal/core/wmo"
	perr "meteopage/internal/platform/errors"
	"meteopage/internal/platform/locale"
	phttp "meteopage/internal/platform/net/http"
	kit "meteopage/internal/platform/testkit"
	ptime "meteopage/internal/platform/time"
	"meteopage/internal/services/web/forecast/domain"
	svc "meteopage/internal/services/web/forecast/service"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
)

const day = 86400

var paris = domain.Location{Name: "Paris", Latitude: 48.8534, Longitude: 2.3488, Timezone: "Europe/Berlin"}

func threeDays() forecast.Static {
	return forecast.Static{
		Offset: 7200,
		Range:  forecast.TimeRange{Start: 1717020000, End: 1717020000 + 3*day, Step: day},
		Vars:   [][]float64{{0, 61, 95}},
	}
}

func newService(s forecast.Series, err error) svc.Service {
	src := forecast.SourceFunc(func(context.Context) (forecast.Series, error) { return s, err })
	at := time.Date(2024, 5, 30, 8, 0, 0, 0, time.UTC)
	return svc.New(src, wmo.Standard(), paris,
		svc.WithClock(ptime.Fixed(at)),
		svc.WithIDs(func() string { return "load-1" }))
}

func apiServer(s svc.Service) stdhttp.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/forecast", func(fr phttp.Router) { Register(fr, s) })
	return r.Mux()
}

func do(h stdhttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope[T any] struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Data       T      `json:"data"`
}

func TestForecastJSON_Resolved(t *testing.T) {
	rec := do(apiServer(newService(threeDays(), nil)), stdhttp.MethodGet, "/forecast", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := kit.MustJSON[envelope[domain.ForecastResponse]](t, rec.Body.Bytes())
	got := env.Data
	if got.LoadID != "load-1" || got.Location.Name != "Paris" || len(got.Entries) != 3 {
		t.Fatalf("unexpected payload %+v", got)
	}
	first := got.Entries[0]
	if first.Date != "2024-05-30" || first.Label != "5/30/2024" || first.Code != 0 || first.Description != "Clear sky" {
		t.Fatalf("first entry = %+v", first)
	}
	if got.Entries[2].Description != "Thunderstorm: Slight or moderate" {
		t.Fatalf("last entry = %+v", got.Entries[2])
	}
}

func TestForecastJSON_ProviderFailureMapsStatus(t *testing.T) {
	fail := perr.Upstreamf("open-meteo: Latitude must be in range of -90 to 90°. Given: 123.0.")
	rec := do(apiServer(newService(nil, fail)), stdhttp.MethodGet, "/forecast", "")
	if rec.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), "Latitude must be in range")
}

func TestCodes_Ascending(t *testing.T) {
	rec := do(apiServer(newService(threeDays(), nil)), stdhttp.MethodGet, "/forecast/codes", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	codes := kit.MustJSON[envelope[[]domain.CodeDTO]](t, rec.Body.Bytes()).Data
	if len(codes) != wmo.Standard().Len() {
		t.Fatalf("codes = %d", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1].Code >= codes[i].Code {
			t.Fatalf("codes not ascending at %d: %+v", i, codes[i-1:i+1])
		}
	}
}

func TestDecode_TruncatesAndReportsExpected(t *testing.T) {
	body := `{"utc_offset_seconds":7200,"start":1717020000,"end":1717279200,"step":86400,"codes":[3,45]}`
	rec := do(apiServer(newService(threeDays(), nil)), stdhttp.MethodPost, "/forecast/decode", body)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	got := kit.MustJSON[envelope[domain.DecodeResponse]](t, rec.Body.Bytes()).Data
	if got.Expected != 3 || len(got.Entries) != 2 {
		t.Fatalf("decode = %+v", got)
	}
	if got.Entries[1].Description != "Fog" || got.Entries[1].Date != "2024-05-31" {
		t.Fatalf("second entry = %+v", got.Entries[1])
	}
}

func TestDecode_MalformedRangeIsEmpty(t *testing.T) {
	body := `{"start":100,"end":50,"step":86400,"codes":[1]}`
	rec := do(apiServer(newService(threeDays(), nil)), stdhttp.MethodPost, "/forecast/decode", body)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := kit.MustJSON[envelope[domain.DecodeResponse]](t, rec.Body.Bytes()).Data
	if got.Expected != 0 || len(got.Entries) != 0 {
		t.Fatalf("decode = %+v", got)
	}
}

func TestDecode_FullInt64SpanIsBoundedByCodes(t *testing.T) {
	body := `{"start":-9223372036854775808,"end":9223372036854775807,"step":1,"codes":[0,1]}`
	rec := do(apiServer(newService(threeDays(), nil)), stdhttp.MethodPost, "/forecast/decode", body)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	got := kit.MustJSON[envelope[domain.DecodeResponse]](t, rec.Body.Bytes()).Data
	if got.Expected != math.MaxInt || len(got.Entries) != 2 {
		t.Fatalf("expected=%d entries=%d", got.Expected, len(got.Entries))
	}
	if got.Entries[0].Description != "Clear sky" || got.Entries[1].Description != "Mainly clear" {
		t.Fatalf("entries = %+v", got.Entries)
	}
}

func TestDecode_RejectsOutOfRangeOffset(t *testing.T) {
	body := `{"utc_offset_seconds":90000,"start":0,"end":86400,"step":86400,"codes":[1]}`
	rec := do(apiServer(newService(threeDays(), nil)), stdhttp.MethodPost, "/forecast/decode", body)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestToDTO_UsesLocaleLayout(t *testing.T) {
	de := locale.Match(language.German.String())
	out := toDTO([]forecast.Entry{{Date: time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), Code: 2, Description: "Partly cloudy"}}, de)
	if out[0].Label != "30.5.2024" || out[0].Date != "2024-05-30" {
		t.Fatalf("dto = %+v", out[0])
	}
}
