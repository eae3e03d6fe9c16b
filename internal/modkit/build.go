package modkit

import (
	"net/http"

	"meteopage/internal/modkit/httpkit"
	str "meteopage/internal/platform/strings"
)

// Built is what a module constructor reads back from its options
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Register is never nil, it defaults to a no-op
	Register func(httpkit.Router)
}

// Build applies opts in order and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Base is the routing half every module shares, embed it to get Name, Prefix and MountRoutes
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	routes func(httpkit.Router)
}

// Base binds the module's own routes, endpoints added with WithRegister mount after them
func (b Built) Base(routes func(httpkit.Router)) Base {
	extra := b.Register
	return Base{
		name:   b.Name,
		prefix: b.Prefix,
		mw:     b.Mw,
		routes: func(r httpkit.Router) {
			routes(r)
			extra(r)
		},
	}
}

// Name is the registry key, an empty name panics
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix is the normalized mount point, an empty or root prefix panics
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// MountRoutes mounts the routes under Prefix behind the module middleware
func (b Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, b.Prefix(), b.mw, b.routes)
}
