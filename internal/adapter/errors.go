// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// FallbackMessage is reported when a failure carries no usable "detail".
const FallbackMessage = "request failed"

// Status sentinels wrapped by [*APIError]; match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrRequestInterception is returned when the outgoing request could not
	// be prepared (e.g. the token storage is unreadable). The request is not
	// sent.
	ErrRequestInterception = errors.New("request interception failed")

	// ErrInvalidBaseURL is returned by [NewClient] for an unusable API location.
	ErrInvalidBaseURL = errors.New("invalid api base url")
)

// APIError is a failure reported by the server with a non-2xx status.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Detail is the server's "detail" message, empty when it sent none or
	// sent a structured (validation) detail.
	Detail string
	// Body is the raw, whitespace-trimmed response body.
	Body string

	err error
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Body
	}
	if msg == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.err)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

// Unwrap returns the status sentinel (e.g. [ErrNotFound]).
func (e *APIError) Unwrap() error {
	return e.err
}
