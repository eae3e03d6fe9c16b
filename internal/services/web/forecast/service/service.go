// Package service runs the fetch then decode cycle behind the forecast pages
package service

import (
	"context"

	"meteopage/internal/core/forecast"
	"meteopage/internal/core/wmo"
	"meteopage/internal/platform/logger"
	ptime "meteopage/internal/platform/time"
	"meteopage/internal/services/web/forecast/domain"

	"github.com/google/uuid"
)

// Service defines the forecast service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the forecast service
type Svc struct {
	src     forecast.Source
	catalog wmo.Catalog
	loc     domain.Location
	now     ptime.Clock
	newID   func() string
}

// Option tweaks a Svc
type Option func(*Svc)

// WithClock pins the clock used for load timestamps
func WithClock(c ptime.Clock) Option {
	return func(s *Svc) {
		if c != nil {
			s.now = c
		}
	}
}

// WithIDs replaces the load id generator
func WithIDs(fn func() string) Option {
	return func(s *Svc) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New constructs a forecast service
func New(src forecast.Source, catalog wmo.Catalog, loc domain.Location, opts ...Option) *Svc {
	if src == nil {
		panic("forecast.Service requires a non nil Source")
	}
	s := &Svc{
		src:     src,
		catalog: catalog,
		loc:     loc,
		now:     ptime.System,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Forecast issues one fetch and settles the load, it never returns a pending load
func (s *Svc) Forecast(ctx context.Context) domain.Result {
	id := s.newID()
	ctx = logger.WithLoad(ctx, id)
	log := logger.C(ctx)

	l := forecast.Pending(id, s.now())
	log.Debug().Str("location", s.loc.Name).Msg("forecast load started")

	series, err := s.src.Fetch(ctx)
	if err != nil {
		l = l.Fail(err, s.now())
		log.Warn().Err(err).Dur("elapsed", l.Elapsed()).Msg("forecast load failed")
		return domain.Result{Load: l, Location: s.loc}
	}

	vals, ok := series.Variable(0)
	if !ok {
		log.Warn().Msg("provider response has no weather code series")
	}
	entries := s.decode(ctx, series.Daily(), series.UTCOffsetSeconds(), forecast.Codes(vals))

	l = l.Resolve(entries, s.now())
	log.Info().Int("entries", len(entries)).Dur("elapsed", l.Elapsed()).Msg("forecast load resolved")
	return domain.Result{Load: l, Location: s.loc}
}

// Decode runs the decoder over a caller supplied block
func (s *Svc) Decode(ctx context.Context, in domain.DecodeInput) []forecast.Entry {
	return s.decode(ctx, in.Range(), in.UTCOffsetSeconds, in.Codes)
}

// decode logs contract violations and truncates instead of failing
func (s *Svc) decode(ctx context.Context, r forecast.TimeRange, offset int64, codes []int) []forecast.Entry {
	log := logger.C(ctx)
	if !r.Valid() {
		log.Warn().Int64("start", r.Start).Int64("end", r.End).Int64("step", r.Step).Msg("malformed daily range")
	}
	if exp := forecast.ExpectedCount(r); exp != len(codes) {
		log.Warn().Int("expected", exp).Int("codes", len(codes)).Msg("daily series length mismatch, truncating")
	}
	return forecast.Decode(r, offset, codes, s.catalog)
}

// Codes lists the catalog in ascending code order
func (s *Svc) Codes() []domain.CodeDTO {
	codes := s.catalog.Codes()
	out := make([]domain.CodeDTO, 0, len(codes))
	for _, c := range codes {
		out = append(out, domain.CodeDTO{Code: c, Description: s.catalog.Describe(c)})
	}
	return out
}

// Location reports where forecasts are fetched for
func (s *Svc) Location() domain.Location { return s.loc }

var _ Service = (*Svc)(nil)
