package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "meteopage/internal/platform/errors"
	"meteopage/internal/platform/logger"
	pnet "meteopage/internal/platform/net"
)

// RecoverJSON converts panics into a JSON 500 and logs stack with request id
// a panic after the body started streaming only gets logged
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		tw := &trackWriter{ResponseWriter: w}
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())

			// format stack like chi recover
			raw := debug.Stack()
			lines := strings.Split(string(raw), "\n")
			stack := strings.Join(lines, "\n\t")

			logger.C(r.Context()).Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Msgf("panic recovered\n%s", stack)

			if tw.started {
				return
			}

			// mirror id in response header
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}

			status, body := pnet.Error(perr.PanicErrf("panic recovered"), reqID)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = stdjson.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(tw, r)
	})
}

// trackWriter remembers whether the response has been committed
type trackWriter struct {
	stdhttp.ResponseWriter
	started bool
}

func (t *trackWriter) WriteHeader(code int) {
	t.started = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *trackWriter) Write(b []byte) (int, error) {
	t.started = true
	return t.ResponseWriter.Write(b)
}

func (t *trackWriter) Flush() {
	t.started = true
	if f, ok := t.ResponseWriter.(stdhttp.Flusher); ok {
		f.Flush()
	}
}

func (t *trackWriter) Unwrap() stdhttp.ResponseWriter { return t.ResponseWriter }
