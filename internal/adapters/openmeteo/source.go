package openmeteo

import (
	"context"

	"meteopage/internal/core/forecast"
	"meteopage/internal/platform/config"
)

// Config is the env driven setup of the forecast source
type Config struct {
	Client Options
	RPS    float64
	Burst  int
}

// FromConfig reads with OPENMETEO_ prefix
func FromConfig(cfg config.Conf) Config {
	c := cfg.Prefix("OPENMETEO_")
	return Config{
		Client: Options{
			BaseURL:   c.MayURL("BASE_URL", baseURLDefault).String(),
			UserAgent: c.MayString("USER_AGENT", defaultUA),
			Timeout:   c.MayDuration("TIMEOUT", defaultTimeout),
		},
		RPS:   c.MayFloat64("RPS", 1),
		Burst: c.MayInt("BURST", 5),
	}
}

// NewFetcher builds the rate limited client described by c, RPS <= 0 disables limiting
func NewFetcher(c Config) Fetcher {
	var f Fetcher = NewClient(c.Client)
	if c.RPS > 0 {
		f = NewRateLimited(f, c.RPS, c.Burst)
	}
	return f
}

// Pin binds q to f so the pair satisfies forecast.Source
func Pin(f Fetcher, q Query) forecast.Source {
	return forecast.SourceFunc(func(ctx context.Context) (forecast.Series, error) {
		resp, err := f.Fetch(ctx, q)
		if err != nil {
			return nil, err
		}
		return resp, nil
	})
}
