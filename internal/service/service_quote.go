package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/internal/validators"
	"github.com/MKhiriev/go-logistics/models"
)

// Pricing constants, in minor currency units.
const (
	BaseFeeMinor      = 500_000 // 5000.00
	PerKgMinor        = 200_000 // 2000.00
	PerKmMinor        = 10_000  // 100.00
	EstimatedDelivery = "3-5 business days"
)

// QuotePrice returns the price in minor units for a parcel of weightKg
// travelling distanceKm. ErrPriceOutOfRange is returned for negative inputs
// and for prices that do not fit in int64.
func QuotePrice(weightKg float64, distanceKm int64) (models.Money, error) {
	if math.IsNaN(weightKg) || weightKg < 0 || distanceKm < 0 {
		return 0, ErrPriceOutOfRange
	}

	weightPart := math.Round(weightKg * PerKgMinor)
	// float64(MaxInt64) rounds up to 2^63, so >= catches the first value
	// that no longer converts.
	if weightPart >= float64(math.MaxInt64-BaseFeeMinor) {
		return 0, ErrPriceOutOfRange
	}

	price := BaseFeeMinor + int64(weightPart)
	if distanceKm > (math.MaxInt64-price)/PerKmMinor {
		return 0, ErrPriceOutOfRange
	}

	return models.Money(price + distanceKm*PerKmMinor), nil
}

type quoteService struct {
	quoteRepository store.QuoteRepository
	distances       DistanceCalculator
	validator       validators.Validator
	ids             idGenerator
	currency        string

	logger *logger.Logger
}

func NewQuoteService(quoteRepository store.QuoteRepository, distances DistanceCalculator, cfg config.App, logger *logger.Logger) QuoteService {
	return &quoteService{
		quoteRepository: quoteRepository,
		distances:       distances,
		validator:       validators.NewRequestValidator(),
		ids:             utils.NewUUIDGenerator(),
		currency:        cfg.Currency,
		logger:          logger,
	}
}

// Estimate prices the request, stores the quote and returns it.
func (q *quoteService) Estimate(ctx context.Context, request models.QuoteRequest) (models.Quote, error) {
	log := logger.FromContext(ctx)

	if err := q.validator.Validate(ctx, request); err != nil {
		return models.Quote{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	origin := strings.TrimSpace(request.Origin)
	destination := strings.TrimSpace(request.Destination)

	distance, err := q.distances.Distance(ctx, origin, destination)
	if err != nil {
		log.Err(err).Str("func", "quoteService.Estimate").Msg("distance lookup failed")
		return models.Quote{}, fmt.Errorf("distance lookup failed: %w", err)
	}

	price, err := QuotePrice(request.Weight.Kg, distance)
	if err != nil {
		log.Err(err).
			Str("func", "quoteService.Estimate").
			Float64("weight_kg", request.Weight.Kg).
			Int64("distance_km", distance).
			Msg("pricing failed")
		return models.Quote{}, err
	}

	quote := models.Quote{
		ID:                q.ids.Generate(),
		Origin:            origin,
		Destination:       destination,
		WeightKg:          request.Weight.Kg,
		Dimensions:        strings.TrimSpace(request.Dimensions),
		Price:             price,
		Currency:          q.currency,
		DistanceKm:        distance,
		EstimatedDelivery: EstimatedDelivery,
	}

	saved, err := q.quoteRepository.CreateQuote(ctx, quote)
	if err != nil {
		log.Err(err).Str("func", "quoteService.Estimate").Msg("saving quote failed")
		return models.Quote{}, fmt.Errorf("saving quote failed: %w", err)
	}

	return saved, nil
}

func (q *quoteService) Get(ctx context.Context, quoteID string) (models.Quote, error) {
	return q.quoteRepository.GetQuote(ctx, quoteID)
}

// RandomDistanceCalculator stands in for a geocoding service: it returns a
// uniformly distributed distance in [Min, Max] kilometres.
type RandomDistanceCalculator struct {
	Min, Max int64
}

// NewRandomDistanceCalculator returns a calculator over [100, 1000] km.
func NewRandomDistanceCalculator() *RandomDistanceCalculator {
	return &RandomDistanceCalculator{Min: 100, Max: 1000}
}

func (r *RandomDistanceCalculator) Distance(_ context.Context, _, _ string) (int64, error) {
	return r.Min + rand.Int64N(r.Max-r.Min+1), nil
}

// FixedDistanceCalculator always returns Km.
type FixedDistanceCalculator struct {
	Km int64
}

func (f FixedDistanceCalculator) Distance(context.Context, string, string) (int64, error) {
	return f.Km, nil
}
