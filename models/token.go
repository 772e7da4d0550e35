// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by [Token.Claims] when there is no access token to inspect.
var ErrEmptyToken = errors.New("empty access token")

// Token is the response of a successful login.
//
// AccessToken is treated as an opaque bearer credential by the rest of the
// client; it is only decoded (never verified) for display purposes.
type Token struct {
	// AccessToken is the bearer credential attached to authenticated requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer" for this server.
	TokenType string `json:"token_type,omitempty"`
}

// TokenClaims is the human-readable subset of the access token payload.
type TokenClaims struct {
	Subject   string     `json:"subject"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// String returns the raw access token.
func (t Token) String() string {
	return t.AccessToken
}

// Claims decodes the access token payload without verifying its signature.
// The signing key lives on the server, so the result is informational only
// and must never be used for authorization decisions.
func (t Token) Claims() (TokenClaims, error) {
	if t.AccessToken == "" {
		return TokenClaims{}, ErrEmptyToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error parsing access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error extracting subject from token: %w", err)
	}

	result := TokenClaims{Subject: subject}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error extracting expiry from token: %w", err)
	}
	if exp != nil {
		at := exp.Time
		result.ExpiresAt = &at
	}

	return result, nil
}
