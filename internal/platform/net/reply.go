package net

import (
	"net/http"

	perr "meteopage/internal/platform/errors"
)

// Wire is the JSON envelope every API answer and recovered panic is written in
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Data builds a success envelope with an explicit status
func Data(status int, data any, reqID string) (int, Wire) {
	return status, Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) { return Data(http.StatusOK, data, reqID) }

// Error builds an error envelope, a nil err is a 200 without data
func Error(err error, reqID string) (int, Wire) {
	status, d := perr.HTTP(err)
	_, w := Data(status, nil, reqID)
	w.Code, w.Error = d.Code, d.Message
	return status, w
}
