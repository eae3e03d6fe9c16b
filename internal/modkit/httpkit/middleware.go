package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"meteopage/internal/platform/logger"
	"meteopage/internal/platform/net/middleware"
)

// StackOptions tunes the shared middleware stacks
type StackOptions struct {
	// Slow marks access log lines at warn level, 0 disables it
	Slow time.Duration
	// Log receives access log lines, nil is the root logger
	Log *logger.Logger
	// Timeout bounds API handlers, 0 means 30s
	Timeout time.Duration
	// CORS is handed to go-chi/cors as is
	CORS middleware.CORSOptions
	// MaxPages caps concurrently streaming pages, 0 leaves them unbounded
	MaxPages int
}

// CommonStack returns the baseline middleware slice for the /api scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID,
		middleware.RealIP,

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Log: o.Log}),

		middleware.Locale,
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes,
		middleware.Timeout(timeout),
	}
}

// PageStack returns the middleware slice for html pages
// pages carry no Timeout, a streamed page stays open until the provider answers
func PageStack(o StackOptions) []func(http.Handler) http.Handler {
	mws := append(middleware.Defaults(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Log: o.Log}),
		middleware.Locale,
	)
	if o.MaxPages > 0 {
		mws = append(mws, middleware.Throttle(o.MaxPages))
	}
	return mws
}
