package http

import (
	"errors"
	stdhttp "net/http"
)

// Stream writes an html document in parts, flushing each part to the client
// the first write error sticks and turns later writes into no-ops
type Stream struct {
	w   stdhttp.ResponseWriter
	rc  *stdhttp.ResponseController
	err error
}

// NewStream commits status and html headers and returns the writer
func NewStream(w stdhttp.ResponseWriter, status int) *Stream {
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	return &Stream{w: w, rc: stdhttp.NewResponseController(w)}
}

// Write implements io.Writer
func (s *Stream) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

// Flush pushes buffered bytes to the client; writers without flush support are tolerated
func (s *Stream) Flush() error {
	if s.err != nil {
		return s.err
	}
	if err := s.rc.Flush(); err != nil && !errors.Is(err, stdhttp.ErrNotSupported) {
		s.err = err
	}
	return s.err
}

// Err returns the first write or flush error
func (s *Stream) Err() error { return s.err }
