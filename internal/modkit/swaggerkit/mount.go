// Package swaggerkit serves the generated OpenAPI document and Swagger UI
package swaggerkit

import (
	"net/http"

	"meteopage/internal/platform/logger"
	phttp "meteopage/internal/platform/net/http"
	"meteopage/internal/services/web/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options controls the docs routes
type Options struct {
	Enabled bool
	// TitleSuffix is appended to the document title, e.g. "(staging)"
	TitleSuffix string
}

// Mount serves /api/docs when enabled, the document is prepared once here
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	body, err := prepare(docReader(), o.TitleSuffix)
	if err != nil {
		logger.Named("swagger").Error().Err(err).Msg("openapi document unusable")
	}

	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(body)
	})
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
