package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "meteopage/internal/platform/errors"
	kit "meteopage/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type daysIn struct {
	Days int `json:"days" validate:"min=1,max=16"`
}

func jsonRouter(t *testing.T) Router {
	t.Helper()
	r := AdaptChi(chi.NewRouter())
	GetJSON(r, "/codes", func(*http.Request) (any, error) {
		return []int{0, 1, 2}, nil
	})
	GetJSON(r, "/down", func(*http.Request) (any, error) {
		return nil, perr.Unavailablef("open-meteo request failed")
	})
	GetJSON(r, "/accepted", func(*http.Request) (any, error) {
		return Response{Status: http.StatusAccepted, Body: "queued"}, nil
	})
	PostJSON(r, "/days", func(_ *http.Request, in daysIn) (any, error) {
		if in.Days == 13 {
			return nil, errors.New("unlucky")
		}
		return map[string]int{"days": in.Days}, nil
	})
	return r
}

func TestJSONRoutes(t *testing.T) {
	r := jsonRouter(t)
	cases := []struct {
		name, method, path, body string
		status                   int
		contains                 string
	}{
		{"get data", http.MethodGet, "/codes", "", http.StatusOK, `"data":[0,1,2]`},
		{"coded error", http.MethodGet, "/down", "", http.StatusServiceUnavailable, `"error":"open-meteo request failed"`},
		{"ready response", http.MethodGet, "/accepted", "", http.StatusAccepted, `"data":"queued"`},
		{"bound body", http.MethodPost, "/days", `{"days":7}`, http.StatusOK, `"days":7`},
		{"broken json", http.MethodPost, "/days", `{"days":`, http.StatusBadRequest, "invalid JSON"},
		{"empty body", http.MethodPost, "/days", "", http.StatusBadRequest, "empty body"},
		{"failed validation", http.MethodPost, "/days", `{"days":40}`, http.StatusBadRequest, `"error":`},
		{"foreign error", http.MethodPost, "/days", `{"days":13}`, http.StatusInternalServerError, "unlucky"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, req)

			if rec.Code != c.status {
				t.Fatalf("status = %d, want %d body=%s", rec.Code, c.status, rec.Body.String())
			}
			kit.MustContain(t, rec.Body.String(), c.contains)
		})
	}
}

func TestJSONHandler_SkipsFnOnBindError(t *testing.T) {
	called := false
	h := JSONHandler(func(*http.Request, daysIn) (any, error) {
		called = true
		return nil, nil
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1,2]`)))
	if called || rec.Code != http.StatusBadRequest {
		t.Fatalf("called=%v status=%d", called, rec.Code)
	}
}
