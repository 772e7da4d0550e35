// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile of an account as returned by the server.
// It never carries credentials.
type User struct {
	// ID is the server-assigned account identifier.
	ID uuid.UUID `json:"id"`

	// Email is the unique address used to log in.
	Email string `json:"email"`

	// Username is the unique public display name.
	Username string `json:"username"`

	// Avatar is an optional URL of the profile picture.
	Avatar *string `json:"avatar,omitempty"`

	// Bio is an optional free-form profile description.
	Bio *string `json:"bio,omitempty"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the request body of a new account.
// Username must be 3..50 characters and Password 6..100 characters;
// the server enforces both.
type Registration struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserUpdate holds the profile fields to change for the current user.
// Nil fields are left untouched. The server reads them from the query
// string, not from the request body.
type UserUpdate struct {
	Username *string `url:"username,omitempty"`
	Bio      *string `url:"bio,omitempty"`
	Avatar   *string `url:"avatar,omitempty"`
}
