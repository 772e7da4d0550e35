// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenKey is the fixed key under which the session token is persisted.
// Absence of the key means the user is not authenticated.
const TokenKey = "token"

// KeyValueStorage is durable client-side key/value storage that survives
// process restarts. Values are plain text.
//
// Implementations must be safe for concurrent use; no atomicity is promised
// across separate calls.
type KeyValueStorage interface {
	// Get returns the value stored under key, or [ErrKeyNotFound] when the
	// key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
