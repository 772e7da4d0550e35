// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/model-hub-client/internal/config"
	"github.com/MKhiriev/model-hub-client/internal/logger"
)

// MemoryDSN selects the in-memory backend instead of a SQLite file.
const MemoryDSN = ":memory:"

// ClientStorages groups the client-side storage backends into a single value
// that can be passed to the adapter and the session store.
type ClientStorages struct {
	// Preferences is the durable key/value storage holding the session token.
	Preferences KeyValueStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. for [MemoryDSN] it returns a go-memdb backed storage;
//  2. otherwise it opens the SQLite file named by cfg.DB.DSN (creating it if
//     needed), runs pending migrations and wires the preferences storage.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("dsn", cfg.DB.DSN).Msg("creating client storages...")

	if cfg.DB.DSN == MemoryDSN {
		mem, err := NewMemoryStorage()
		if err != nil {
			return nil, err
		}
		return &ClientStorages{Preferences: mem}, nil
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Preferences: NewSQLitePreferences(db, logger),
		db:          db,
	}, nil
}

// Close releases the underlying database, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
