// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-tasks-api/migrations"
	sq "github.com/Masterminds/squirrel"
)

// buildSchemaVersionQuery selects the latest applied version from the goose
// metadata table.
func buildSchemaVersionQuery(placeholder sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select("COALESCE(MAX(version_id), 0)").
		From(migrations.VersionTable).
		Where(sq.Eq{"is_applied": true}).
		PlaceholderFormat(placeholder).
		ToSql()
}
