// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const preferencesTable = "preferences"

func getPreferenceQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func upsertPreferenceQuery(key, value string) (string, []any, error) {
	return sq.Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deletePreferenceQuery(key string) (string, []any, error) {
	return sq.Delete(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
