// Package migrations embeds the PostgreSQL schema of the logistics server
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Applied describes one migration that was run by Migrate.
type Applied struct {
	Version int64
	Name    string
}

// Migrate brings db up to the latest embedded schema version and reports
// which migrations were applied. An up-to-date schema yields an empty slice.
func Migrate(ctx context.Context, db *sql.DB) ([]Applied, error) {
	if db == nil {
		return nil, fmt.Errorf("migration error: %w", errNilDB)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, embedMigrations)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	applied := make([]Applied, 0, len(results))
	for _, result := range results {
		if result == nil || result.Source == nil {
			continue
		}
		applied = append(applied, Applied{Version: result.Source.Version, Name: result.Source.Path})
	}

	return applied, nil
}
