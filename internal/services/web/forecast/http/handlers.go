// Package http provides the forecast pages and JSON endpoints
package http

import (
	stdhttp "net/http"

	"meteopage/internal/core/forecast"
	"meteopage/internal/modkit/httpkit"
	"meteopage/internal/platform/locale"
	"meteopage/internal/services/web/forecast/domain"
	svc "meteopage/internal/services/web/forecast/service"
)

// Register mounts the forecast JSON endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one fetch per call, 502 when the provider refuses
	httpkit.Get(r, "/", h.forecast)

	// catalog
	httpkit.Get(r, "/codes", h.codes)

	// decoder over a caller supplied block
	httpkit.PostJSON[domain.DecodeInput](r, "/decode", h.decode)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /forecast Forecast forecastGet
// @Summary Daily forecast for the configured location
// @Tags Forecast
// @Produce json
// @Param Accept-Language header string false "Picks the layout of entry labels" default(en-US)
// @Success 200 {object} domain.ForecastResponse "ok"
// @Failure 502 {object} ErrorResponse "provider refused the request"
// @Failure 503 {object} ErrorResponse "provider unreachable"
// @Router /forecast [get]
func (h *handlers) forecast(r *stdhttp.Request) (any, error) {
	res := h.svc.Forecast(r.Context())
	if res.Status != forecast.StatusResolved {
		return nil, res.Err
	}
	return domain.ForecastResponse{
		Location:  res.Location,
		LoadID:    res.ID,
		ElapsedMS: res.Elapsed().Milliseconds(),
		Entries:   toDTO(res.Entries, locale.FromContext(r.Context())),
	}, nil
}

// swagger:route GET /forecast/codes Forecast forecastCodes
// @Summary Weather code catalog
// @Tags Forecast
// @Produce json
// @Success 200 {array} domain.CodeDTO "ok"
// @Router /forecast/codes [get]
func (h *handlers) codes(_ *stdhttp.Request) (any, error) {
	return h.svc.Codes(), nil
}

// swagger:route POST /forecast/decode Forecast forecastDecode
// @Summary Decode a packed daily block
// @Tags Forecast
// @Accept json
// @Produce json
// @Param payload body domain.DecodeInput true "Daily block"
// @Success 200 {object} domain.DecodeResponse "ok"
// @Router /forecast/decode [post]
func (h *handlers) decode(r *stdhttp.Request, in domain.DecodeInput) (any, error) {
	entries := h.svc.Decode(r.Context(), in)
	return domain.DecodeResponse{
		Expected: forecast.ExpectedCount(in.Range()),
		Entries:  toDTO(entries, locale.FromContext(r.Context())),
	}, nil
}

func toDTO(entries []forecast.Entry, loc locale.Locale) []domain.EntryDTO {
	out := make([]domain.EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.EntryDTO{
			Date:        e.Date.Format("2006-01-02"),
			Label:       loc.Format(e.Date),
			Code:        e.Code,
			Description: e.Description,
		})
	}
	return out
}
