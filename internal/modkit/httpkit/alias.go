// Package httpkit is what modules import for routing, it keeps internal/platform/net/http out of their imports
package httpkit

import (
	"net/http"

	phttp "meteopage/internal/platform/net/http"
)

type (
	// Router is the platform router seam
	Router = phttp.Router

	// Handler is a plain handler func
	Handler = phttp.Handler

	// Stream is the flushing html writer used by progressive pages
	Stream = phttp.Stream
)

// NewStream starts a streamed html response
func NewStream(w http.ResponseWriter, status int) *Stream { return phttp.NewStream(w, status) }
