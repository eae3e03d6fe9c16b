package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiRouter serves Router on top of any chi router, the root mux and its groups alike
type chiRouter struct{ chi.Router }

// AdaptChi adapts a *chi.Mux to a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{m} }

func (c chiRouter) Get(p string, h Handler)  { c.Router.Get(p, h) }
func (c chiRouter) Post(p string, h Handler) { c.Router.Post(p, h) }
func (c chiRouter) Head(p string, h Handler) { c.Router.Head(p, h) }

func (c chiRouter) Handle(p string, h http.Handler) { c.Router.Handle(p, h) }

func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.Router.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.Router.Group(func(sub chi.Router) { fn(chiRouter{sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.Router.Route(pattern, func(sub chi.Router) { fn(chiRouter{sub}) })
}

func (c chiRouter) NotFound(h Handler) { c.Router.NotFound(h) }

// Mux is the handler to serve, for a group it is the group itself
func (c chiRouter) Mux() http.Handler { return c.Router }
