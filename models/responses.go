// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Message is the generic acknowledgement returned by mutating endpoints
// that have no resource to return (delete, unlike, logout).
type Message struct {
	Message string  `json:"message"`
	Detail  *string `json:"detail,omitempty"`
}

// ErrorResponse is the error payload of a failed request.
//
// Detail is usually a human-readable string, but validation failures carry
// a structured list instead, so it is kept raw and interpreted by
// [ErrorResponse.Message].
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// Message returns the detail text when it is a non-empty JSON string and
// false otherwise.
func (e ErrorResponse) Message() (string, bool) {
	if len(e.Detail) == 0 {
		return "", false
	}

	var text string
	if err := json.Unmarshal(e.Detail, &text); err != nil || text == "" {
		return "", false
	}

	return text, true
}
