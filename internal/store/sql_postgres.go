package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared pgx connection pool. Repositories embed it and use
// IsRetryable to decide whether a failure is transient.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pool for cfg.DSN, applies the pool limits from
// cfg and pings the server before returning.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	pool, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("opening postgres pool failed")
		return nil, fmt.Errorf("opening postgres pool failed: %w", err)
	}
	configurePool(pool, cfg)

	if err = pool.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("postgres is unreachable")
		_ = pool.Close()
		return nil, fmt.Errorf("postgres is unreachable: %w", err)
	}

	log.Info().
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("connected to postgres")

	return &DB{
		DB:                 pool,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

func configurePool(pool *sql.DB, cfg config.DB) {
	if cfg.MaxOpenConns > 0 {
		pool.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		pool.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// Migrate brings the schema up to date and logs each applied version.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}

	log := db.logger
	if log == nil {
		log = logger.Nop()
	}
	for _, m := range applied {
		log.Info().Int64("version", m.Version).Str("file", m.Name).Msg("migration applied")
	}
	if len(applied) == 0 {
		log.Debug().Msg("schema is up to date")
	}

	return nil
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) IsRetryable(err error) bool {
	classificator := db.errorClassificator
	if classificator == nil {
		classificator = NewPostgresErrorClassifier()
	}
	return classificator.Classify(err) == Retryable
}

// postgresError returns the SQLSTATE carried by err, or "".
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
