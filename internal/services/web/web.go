// Package web mounts the forecast pages, the JSON API and the docs
package web

import (
	"net/http"
	"strings"
	"time"

	"meteopage/internal/core/forecast"
	"meteopage/internal/platform/config"
	perr "meteopage/internal/platform/errors"
	"meteopage/internal/platform/logger"
	phttp "meteopage/internal/platform/net/http"
	"meteopage/internal/platform/net/middleware"
	ptime "meteopage/internal/platform/time"

	"meteopage/internal/modkit"
	"meteopage/internal/modkit/httpkit"
	"meteopage/internal/modkit/module"
	"meteopage/internal/modkit/swaggerkit"

	forecastmod "meteopage/internal/services/web/forecast/module"
	metamod "meteopage/internal/services/web/meta/module"
)

// Options are the web options
type Options struct {
	// Config is the root view, modules add their own prefixes
	Config         config.Conf
	Logger         *logger.Logger
	Clock          ptime.Clock
	EnableSwagger  bool
	EnableProfiler bool
	// DocsTitleSuffix is appended to the OpenAPI title, e.g. "(staging)"
	DocsTitleSuffix string
	// Slow marks access log lines at warn level
	Slow time.Duration
	// CORSOrigins is handed to the API scope, empty allows none
	CORSOrigins []string
	// MaxPages caps concurrently streaming pages, 0 leaves them unbounded
	MaxPages int
	// Source replaces the Open-Meteo client, tests use this
	Source forecast.Source
}

// FromConfig reads WEB_ prefixed switches
func FromConfig(cfg config.Conf) Options {
	wc := cfg.Prefix("WEB_")
	var origins []string
	for _, o := range strings.Split(wc.MayString("CORS_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return Options{
		Config:          cfg,
		EnableSwagger:   wc.MayBool("SWAGGER", true),
		EnableProfiler:  wc.MayBool("PROFILER", false),
		DocsTitleSuffix: wc.MayString("DOCS_TITLE_SUFFIX", ""),
		Slow:            time.Duration(wc.MayInt("SLOW_MS", 500)) * time.Millisecond,
		CORSOrigins:     origins,
		MaxPages:        wc.MayInt("MAX_PAGES", 0),
	}
}

// Mount mounts the web service onto the given root router, call it before anything else touches r
func Mount(r phttp.Router, opt Options) {
	// liveness short circuit, chi only matches the exact path
	r.Use(middleware.Heartbeat("/health"))

	deps := modkit.Deps{
		Cfg:   opt.Config,
		Clock: opt.Clock,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	var fopts []modkit.Option
	if opt.Source != nil {
		fopts = append(fopts, modkit.WithPorts(forecastmod.Ports{Source: opt.Source}))
	}

	mods := []module.Module{
		metamod.New(deps),
		forecastmod.New(deps, fopts...),
	}

	stack := httpkit.StackOptions{
		Slow:     opt.Slow,
		Log:      opt.Logger,
		CORS:     middleware.CORSOptions{AllowedOrigins: opt.CORSOrigins},
		MaxPages: opt.MaxPages,
	}

	// html pages live at the root with their own untimed stack
	r.Group(func(pr phttp.Router) {
		pr.Use(httpkit.PageStack(stack)...)
		for _, pm := range module.Pages(mods) {
			pm.MountPages(pr)
		}
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		swaggerkit.Mount(r, swaggerkit.Options{Enabled: opt.EnableSwagger, TitleSuffix: opt.DocsTitleSuffix})
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		// unknown API paths answer in the envelope, pages keep chi's plain 404
		api.NotFound(func(w http.ResponseWriter, req *http.Request) {
			phttp.RespondError(w, req, perr.ErrNotFound)
		})

		for _, m := range mods {
			// register each module's ports under its own name
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
