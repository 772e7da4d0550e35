// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/model-hub-client/internal/logger"
)

type sqlitePreferences struct {
	*DB
	logger *logger.Logger
}

// NewSQLitePreferences returns a [KeyValueStorage] backed by the preferences
// table of db. The schema must already be migrated.
func NewSQLitePreferences(db *DB, logger *logger.Logger) KeyValueStorage {
	return &sqlitePreferences{
		DB:     db,
		logger: logger,
	}
}

func (s *sqlitePreferences) Get(ctx context.Context, key string) (string, error) {
	query, args, err := getPreferenceQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlitePreferences.Get").
			Str("key", key).
			Msg("failed to query preference")
		return "", fmt.Errorf("%w: get %q: %w", ErrExecutingQuery, key, err)
	}

	return value, nil
}

func (s *sqlitePreferences) Set(ctx context.Context, key, value string) error {
	query, args, err := upsertPreferenceQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlitePreferences.Set").
			Str("key", key).
			Msg("failed to upsert preference")
		return fmt.Errorf("%w: set %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (s *sqlitePreferences) Remove(ctx context.Context, key string) error {
	query, args, err := deletePreferenceQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlitePreferences.Remove").
			Str("key", key).
			Msg("failed to delete preference")
		return fmt.Errorf("%w: remove %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}
