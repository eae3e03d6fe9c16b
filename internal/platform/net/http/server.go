package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"meteopage/internal/platform/config"
	"meteopage/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the stdlib server in front of it
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer reads ADDR and IDLE_TIMEOUT from cfg
// WriteTimeout stays unset: the streamed page holds the response open for the upstream call
func NewServer(cfg config.Conf) *Server {
	m := chi.NewRouter()
	s := &Server{addr: cfg.MayString("ADDR", ":3000"), mux: m}
	s.srv = &stdhttp.Server{
		Addr:              s.addr,
		Handler:           m,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 60*time.Second),
	}
	return s
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run listens on Addr and serves until Shutdown
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln, request contexts derive from ctx
// a Shutdown ends it with a nil error
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	logger.Named("http").Info().Str("addr", ln.Addr().String()).Msg("http listening")
	if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Named("http").Info().Msg("http shutting down")
	return s.srv.Shutdown(ctx)
}
