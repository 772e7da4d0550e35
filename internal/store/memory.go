// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

var memorySchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		preferencesTable: {
			Name: preferencesTable,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Key"},
				},
			},
		},
	},
}

type preference struct {
	Key   string
	Value string
}

// MemoryStorage is a [KeyValueStorage] that lives only as long as the process.
type MemoryStorage struct {
	db *memdb.MemDB
}

var _ KeyValueStorage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() (*MemoryStorage, error) {
	db, err := memdb.NewMemDB(memorySchema)
	if err != nil {
		return nil, fmt.Errorf("error creating memory storage: %w", err)
	}
	return &MemoryStorage{db: db}, nil
}

// Get implements [KeyValueStorage].
func (m *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(preferencesTable, "id", key)
	if err != nil {
		return "", fmt.Errorf("%w: get %q: %w", ErrExecutingQuery, key, err)
	}
	if obj == nil {
		return "", ErrKeyNotFound
	}

	return obj.(*preference).Value, nil
}

// Set implements [KeyValueStorage].
func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(preferencesTable, &preference{Key: key, Value: value}); err != nil {
		return fmt.Errorf("%w: set %q: %w", ErrExecutingStatement, key, err)
	}
	txn.Commit()

	return nil
}

// Remove implements [KeyValueStorage].
func (m *MemoryStorage) Remove(_ context.Context, key string) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(preferencesTable, "id", key); err != nil {
		return fmt.Errorf("%w: remove %q: %w", ErrExecutingStatement, key, err)
	}
	txn.Commit()

	return nil
}
