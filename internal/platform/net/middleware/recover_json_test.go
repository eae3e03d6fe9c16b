package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "meteopage/internal/platform/errors"
	pnet "meteopage/internal/platform/net"
	"meteopage/internal/platform/net/middleware"
)

func TestRecoverJSON_WritesEnvelope(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-9"))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d want 500", rr.Code)
	}
	if got := rr.Header().Get("X-Request-ID"); got != "req-9" {
		t.Fatalf("X-Request-ID %q", got)
	}
	var body pnet.Wire
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != perr.ErrorCodePanic || body.RequestID != "req-9" || body.Error != "panic recovered" {
		t.Fatalf("envelope mismatch: %+v", body)
	}
}

func TestRecoverJSON_AfterStreamStartedOnlyLogs(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>")
		panic("late")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status %d want 200 (already committed)", rr.Code)
	}
	if rr.Body.String() != "<html>" {
		t.Fatalf("body should not get a JSON tail, got %q", rr.Body.String())
	}
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status %d want 204", rr.Code)
	}
}
