package http

import (
	"embed"
	"html/template"
	stdhttp "net/http"

	"meteopage/internal/core/forecast"
	"meteopage/internal/modkit/httpkit"
	"meteopage/internal/platform/locale"
	"meteopage/internal/platform/logger"
	svc "meteopage/internal/services/web/forecast/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PageDeps are the page handler dependencies
type PageDeps struct {
	// APIPath is where the client page fetches its JSON from
	APIPath string
}

// RegisterPages mounts the streamed page at / and the client rendered page at /client
func RegisterPages(r httpkit.Router, s svc.Service, d PageDeps) {
	if d.APIPath == "" {
		d.APIPath = "/api/v1/forecast"
	}
	p := &pages{svc: s, deps: d}
	httpkit.Page(r, "/", p.stream)
	httpkit.Page(r, "/client", p.client)
}

type pages struct {
	svc  svc.Service
	deps PageDeps
}

type pageView struct {
	Lang     string
	Location string
	API      string
}

func (p *pages) view(r *stdhttp.Request) pageView {
	return pageView{
		Lang:     locale.FromContext(r.Context()).String(),
		Location: p.svc.Location().Name,
		API:      p.deps.APIPath,
	}
}

// stream writes the shell and the loading fallback, flushes, then settles the
// page with the list or the error once the single fetch returns
func (p *pages) stream(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	log := logger.C(ctx)
	view := p.view(r)

	st := httpkit.NewStream(w, stdhttp.StatusOK)
	if r.Method == stdhttp.MethodHead {
		return
	}
	if err := pageTpl.ExecuteTemplate(st, "head", view); err != nil {
		log.Error().Err(err).Msg("page head render failed")
		return
	}
	_ = pageTpl.ExecuteTemplate(st, "fallback", nil)
	if err := st.Flush(); err != nil {
		log.Debug().Err(err).Msg("client went away before the forecast load")
		return
	}

	res := p.svc.Forecast(ctx)
	switch res.Status {
	case forecast.StatusResolved:
		_ = pageTpl.ExecuteTemplate(st, "list", items(res.Entries, locale.FromContext(ctx)))
	default:
		_ = pageTpl.ExecuteTemplate(st, "error", res.Reason())
	}
	_ = pageTpl.ExecuteTemplate(st, "tail", view)
	_ = st.Flush()

	if err := st.Err(); err != nil {
		log.Debug().Err(err).Msg("page stream cut short")
	}
}

// client serves a static shell whose script loads the JSON endpoint
func (p *pages) client(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	st := httpkit.NewStream(w, stdhttp.StatusOK)
	if r.Method == stdhttp.MethodHead {
		return
	}
	if err := pageTpl.ExecuteTemplate(st, "client", p.view(r)); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("client page render failed")
	}
}

// items formats each entry as "<date>: <description>"
func items(entries []forecast.Entry, loc locale.Locale) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, loc.Format(e.Date)+": "+e.Description)
	}
	return out
}
