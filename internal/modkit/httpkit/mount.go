package httpkit

import "net/http"

// APIV1 is the path every versioned JSON route lives under
const APIV1 = "/api/v1"

// MountUnder scopes mount to prefix, mw wraps only the routes mount adds
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 mounts the versioned API scope, pages stay outside it
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIV1, mw, mount)
}
