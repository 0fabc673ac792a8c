package net

import (
	"net/http"

	perr "hangman/internal/platform/errors"
)

// Wire is the envelope every JSON response is wrapped in
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, reqID string, data any) Wire {
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) {
	return http.StatusOK, envelope(http.StatusOK, reqID, data)
}

// Created builds a 201 envelope
func Created(data any, reqID string) (int, Wire) {
	return http.StatusCreated, envelope(http.StatusCreated, reqID, data)
}

// NoContent builds a 204 envelope
func NoContent(reqID string) (int, Wire) {
	return http.StatusNoContent, envelope(http.StatusNoContent, reqID, nil)
}

// Error builds an error envelope, the message of a structured error is passed through verbatim
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	out := envelope(status, reqID, nil)
	out.Code, out.Error, out.Field = w.Code, w.Message, w.Field
	return status, out
}
