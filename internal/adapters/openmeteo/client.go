// Package openmeteo is a small client for the Open-Meteo forecast endpoint
package openmeteo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "meteopage/internal/platform/errors"
	"meteopage/internal/platform/logger"
	str "meteopage/internal/platform/strings"
)

const (
	baseURLDefault = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout = 10 * time.Second
	defaultUA      = "meteopage"
	maxBody        = 1 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Fetcher is satisfied by Client and RateLimited
type Fetcher interface {
	Fetch(ctx context.Context, q Query) (*Response, error)
}

// Client issues one GET per Fetch, it never retries
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	o.BaseURL = str.FirstNonEmpty(o.BaseURL, baseURLDefault)
	o.UserAgent = str.FirstNonEmpty(o.UserAgent, defaultUA)
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("openmeteo"),
		now:  time.Now,
	}
}

// Fetch requests the daily variables of q and decodes the JSON payload
//
// transport failures map to ErrorCodeUnavailable, a non 2xx answer or an
// undecodable body to ErrorCodeUpstream (429 to ErrorCodeTooManyRequests)
// with the provider reason as message when it sent one
func (c *Client) Fetch(ctx context.Context, q Query) (*Response, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	u := c.opts.BaseURL
	if strings.Contains(u, "?") {
		u += "&"
	} else {
		u += "?"
	}
	u += q.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "open-meteo new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open-meteo request failed: %v", err)
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Float64("latitude", q.Latitude).
		Float64("longitude", q.Longitude).
		Msg("open-meteo http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, statusError(resp.StatusCode, body)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open-meteo read failed: %v", err)
	}
	out, err := decodeResponse(raw, q.Daily)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "open-meteo decode failed")
	}
	return out, nil
}

// StatusError is the provider's answer to a request it refused
type StatusError struct {
	Status int
	Reason string
}

// Error implements error
func (e *StatusError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "unexpected status " + http.StatusText(e.Status)
}

// HTTPStatus returns the provider status code
func (e *StatusError) HTTPStatus() int { return e.Status }

// statusError maps a non 2xx answer, the body is {"error":true,"reason":"..."} when the provider explains itself
func statusError(status int, body []byte) error {
	var wire struct {
		Error  bool   `json:"error"`
		Reason string `json:"reason"`
	}
	se := &StatusError{Status: status}
	if json.Unmarshal(body, &wire) == nil && wire.Reason != "" {
		se.Reason = wire.Reason
	}
	code := perr.ErrorCodeUpstream
	if status == http.StatusTooManyRequests {
		code = perr.ErrorCodeTooManyRequests
	}
	if se.Reason != "" {
		return perr.Wrapf(se, code, "open-meteo: %s", se.Reason)
	}
	return perr.Wrapf(se, code, "open-meteo unexpected status %d", status)
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
