package openmeteo

import (
	"context"

	perr "meteopage/internal/platform/errors"

	"golang.org/x/time/rate"
)

// RateLimited wraps a Fetcher with a token bucket shared by every caller
type RateLimited struct {
	next    Fetcher
	limiter *rate.Limiter
}

// NewRateLimited creates a rate limited fetcher
// rps may be fractional, burst is the number of calls allowed back to back
func NewRateLimited(next Fetcher, rps float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for a token or ctx, then forwards to the wrapped fetcher
func (r *RateLimited) Fetch(ctx context.Context, q Query) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeTooManyRequests, "open-meteo rate limit wait canceled")
	}
	return r.next.Fetch(ctx, q)
}

var (
	_ Fetcher = (*Client)(nil)
	_ Fetcher = (*RateLimited)(nil)
)
