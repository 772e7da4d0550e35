// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessableEntity},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.ErrorIs(t, statusError(tt.status), tt.want)
		})
	}
}

func TestFailureMessage(t *testing.T) {
	withDetail := &APIError{StatusCode: http.StatusConflict, Detail: "Email already registered", err: ErrConflict}
	noDetail := &APIError{StatusCode: http.StatusConflict, Body: "conflict", err: ErrConflict}

	assert.Equal(t, "Email already registered", failureMessage(withDetail))
	assert.Equal(t, "Email already registered", failureMessage(fmt.Errorf("POST /auth/register: %w", withDetail)))
	assert.Equal(t, FallbackMessage, failureMessage(noDetail))
	assert.Equal(t, FallbackMessage, failureMessage(errors.New("dial tcp: connection refused")))
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "http 404: Model not found",
		(&APIError{StatusCode: 404, Detail: "Model not found", Body: `{"detail":"Model not found"}`, err: ErrNotFound}).Error())
	assert.Equal(t, "http 502: bad upstream",
		(&APIError{StatusCode: 502, Body: "bad upstream", err: ErrBadGateway}).Error())
	assert.Equal(t, "http 500: internal server error",
		(&APIError{StatusCode: 500, err: ErrInternalServerError}).Error())
}
