package httpkit

import (
	"net/http"

	phttp "meteopage/internal/platform/net/http"
)

type registration struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// fakeRouter records Route/Use/verb calls and passes itself as every subrouter
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	mountHits int
	recs      []registration
}

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.recs = append(f.recs, registration{verb: "HANDLE", path: path, h: h})
}

func (f *fakeRouter) Get(path string, h phttp.Handler) {
	f.recs = append(f.recs, registration{verb: http.MethodGet, path: path, ph: h})
}

func (f *fakeRouter) Post(path string, h phttp.Handler) {
	f.recs = append(f.recs, registration{verb: http.MethodPost, path: path, ph: h})
}

func (f *fakeRouter) Head(path string, h phttp.Handler) {
	f.recs = append(f.recs, registration{verb: http.MethodHead, path: path, ph: h})
}

func (f *fakeRouter) NotFound(phttp.Handler) {}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

var _ Router = (*fakeRouter)(nil)
