// @title         meteopage API
// @version       1.0
// @description   Daily weather forecast pages and JSON endpoints backed by Open-Meteo.
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meteopage/internal/core/version"
	"meteopage/internal/platform/config"
	"meteopage/internal/platform/logger"
	phttp "meteopage/internal/platform/net/http"

	"meteopage/internal/services/web"
)

func main() {
	// .env first so LOG_* and WEB_* can come from the file
	if err := config.LoadDotEnv(); err != nil {
		logger.Get().Panic().Err(err).Msg("load .env failed")
	}
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	webCfg := root.Prefix("WEB_")

	bi := version.Info()
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting meteopage-web")

	// http server (reads WEB_ADDR / WEB_IDLE_TIMEOUT)
	srv := phttp.NewServer(webCfg)

	opt := web.FromConfig(root)
	opt.Logger = l
	web.Mount(srv.Router(), opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), webCfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := <-errc; err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
