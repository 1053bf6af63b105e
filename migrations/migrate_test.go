// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	applied, err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Nil(t, applied)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	_, err := Migrate(context.Background(), nil)
	require.ErrorIs(t, err, errNilDB)
}

// TestEmbeddedMigrations verifies that every migration carries goose
// Up and Down sections and that the expected tables are created.
func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)

	var all strings.Builder
	for _, name := range files {
		body, err := embedMigrations.ReadFile(name)
		require.NoError(t, err)

		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
		all.Write(body)
	}

	for _, table := range []string{"users", "shipments", "quotes", "notifications"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Contains(t, all.String(), "users_email_key UNIQUE (email)")
	assert.Contains(t, all.String(), "shipments_track_id_key UNIQUE (track_id)")
}
