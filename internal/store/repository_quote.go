package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/models"
)

type quoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewQuoteRepository constructs a [QuoteRepository] backed by db.
func NewQuoteRepository(db *DB, logger *logger.Logger) QuoteRepository {
	logger.Debug().Msg("creating quote repository")
	return &quoteRepository{
		DB:     db,
		logger: logger,
	}
}

func (q *quoteRepository) CreateQuote(ctx context.Context, quote models.Quote) (models.Quote, error) {
	log := logger.FromContext(ctx)

	row := q.DB.QueryRowContext(ctx, createQuote,
		quote.ID,
		quote.Origin,
		quote.Destination,
		quote.WeightKg,
		quote.Dimensions,
		int64(quote.Price),
		quote.Currency,
		quote.DistanceKm,
		quote.EstimatedDelivery,
	)

	created, err := scanQuote(row)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.CreateQuote").Msg("failed to insert quote")
		return models.Quote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (q *quoteRepository) GetQuote(ctx context.Context, id string) (models.Quote, error) {
	log := logger.FromContext(ctx)

	quote, err := scanQuote(q.DB.QueryRowContext(ctx, getQuote, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quote{}, ErrQuoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.GetQuote").Str("quote_id", id).Msg("failed to get quote")
		return models.Quote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return quote, nil
}

func scanQuote(row rowScanner) (models.Quote, error) {
	var (
		quote models.Quote
		price int64
	)
	err := row.Scan(
		&quote.ID,
		&quote.Origin,
		&quote.Destination,
		&quote.WeightKg,
		&quote.Dimensions,
		&price,
		&quote.Currency,
		&quote.DistanceKm,
		&quote.EstimatedDelivery,
		&quote.CreatedAt,
	)
	quote.Price = models.Money(price)
	return quote, err
}
