// Package bind decodes and validates JSON request bodies
package bind

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "meteopage/internal/platform/errors"
)

// MaxBody caps how much of a request body ParseJSON reads
const MaxBody = 1 << 20

// ParseJSON decodes the body into T and validates it
// unknown fields and trailing values are rejected, an empty body is only fine on GET and HEAD
func ParseJSON[T any](r *http.Request) (T, error) {
	var out T
	defer r.Body.Close()

	br := bufio.NewReader(io.LimitReader(r.Body, MaxBody))
	if _, err := br.Peek(1); errors.Is(err, io.EOF) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return out, nil
		}
		return out, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(br)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var zero T
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Struct(out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
