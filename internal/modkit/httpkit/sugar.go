package httpkit

import (
	"net/http"

	phttp "meteopage/internal/platform/net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON mounts a JSON body handler under POST, the body is decoded and validated first
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// Page registers a raw html handler, pages write their own bytes and skip the envelope
func Page(r Router, path string, h Handler) {
	r.Get(path, h)
	r.Head(path, h)
}
