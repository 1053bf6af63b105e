package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
)

// Storages groups every server-side repository together with the shared
// connection pool so that it can be handed to the service layer as one
// value.
type Storages struct {
	DB *DB

	UserRepository         UserRepository
	ShipmentRepository     ShipmentRepository
	QuoteRepository        QuoteRepository
	NotificationRepository NotificationRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                     db,
		UserRepository:         NewUserRepository(db, logger),
		ShipmentRepository:     NewShipmentRepository(db, logger),
		QuoteRepository:        NewQuoteRepository(db, logger),
		NotificationRepository: NewNotificationRepository(db, logger),
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
