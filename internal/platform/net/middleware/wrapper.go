// Package middleware adapts chi middleware for the web service without leaking chi types
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "meteopage/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Parameterless chi middleware, ready to Use
var (
	// RequestID reuses X-Request-ID or mints one and stores it on the context
	RequestID = chimw.RequestID
	// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
	RealIP = chimw.RealIP
	// NoCache marks every response uncacheable, forecasts are fetched per request
	NoCache = chimw.NoCache
	// StripSlashes lets /api/v1/forecast/codes/ reach /codes
	StripSlashes = chimw.StripSlashes
)

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// Throttle caps in flight requests, the rest get 429
func Throttle(limit int) func(http.Handler) http.Handler { return chimw.Throttle(limit) }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// Compress gzips responses; the writer still implements http.Flusher so streamed pages keep flushing
func Compress(level int) func(http.Handler) http.Handler {
	return chimw.NewCompressor(level).Handler
}

// CORSOptions is the part of go-chi/cors the service configures
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods = []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"}
	corsExposed = []string{"X-Request-ID"}
)

// CORS applies go-chi/cors, unset lists fall back to what the client page needs
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, corsMethods),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, corsHeaders),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, corsExposed),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Defaults is the untimed base bundle for html pages, outermost first
func Defaults() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{RealIP, RequestID, RecoverJSON, Compress(flate.BestSpeed), NoCache}
}
