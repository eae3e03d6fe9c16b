package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"meteopage/internal/platform/config"
	phttp "meteopage/internal/platform/net/http"
)

func TestNewServer_DefaultsAndMux(t *testing.T) {
	t.Setenv("WEB_ADDR", "")
	srv := phttp.NewServer(config.New().Prefix("WEB_"))
	if srv.Addr() != ":3000" {
		t.Fatalf("expected default addr :3000, got %q", srv.Addr())
	}
	r := srv.Router()
	if r == nil || r.Mux() == nil {
		t.Fatalf("router or mux is nil")
	}

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}
}
