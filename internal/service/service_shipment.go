package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/internal/validators"
	"github.com/MKhiriev/go-logistics/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// idGenerator issues identifiers for new records.
type idGenerator interface {
	Generate() string
}

// shipmentService is the concrete implementation of ShipmentService.
// Every operation except Create is scoped to the owner passed in by the
// caller; the repository enforces that scope in SQL.
type shipmentService struct {
	shipmentRepository store.ShipmentRepository
	publisher          EventPublisher
	validator          validators.Validator
	ids                idGenerator

	// strictTransitions rejects status changes outside
	// models.ShipmentStatus.CanTransition.
	strictTransitions bool

	logger *logger.Logger
}

// NewShipmentService constructs a ShipmentService. Status change events are
// handed to publisher.
func NewShipmentService(shipmentRepository store.ShipmentRepository, publisher EventPublisher, cfg config.App, logger *logger.Logger) ShipmentService {
	return &shipmentService{
		shipmentRepository: shipmentRepository,
		publisher:          publisher,
		validator:          validators.NewRequestValidator(),
		ids:                utils.NewUUIDGenerator(),
		strictTransitions:  cfg.StrictStatusTransitions,
		logger:             logger,
	}
}

// Create validates and stores a new shipment owned by ownerID.
// A taken track id surfaces as store.ErrTrackIDAlreadyExists.
func (s *shipmentService) Create(ctx context.Context, ownerID string, request models.CreateShipmentRequest) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	expected, err := validators.ParseExpectedDate(request.ExpectedDate)
	if err != nil {
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	shipment := models.Shipment{
		ID:           s.ids.Generate(),
		UserID:       ownerID,
		TrackID:      strings.TrimSpace(request.TrackID),
		ProductName:  strings.TrimSpace(request.ProductName),
		Source:       strings.TrimSpace(request.Source),
		Destination:  strings.TrimSpace(request.Destination),
		ExpectedDate: expected,
		Status:       models.ShipmentStatus(strings.TrimSpace(request.Status)),
		Type:         models.ShipmentType(strings.TrimSpace(request.Type)),
	}

	created, err := s.shipmentRepository.CreateShipment(ctx, shipment)
	if err != nil {
		log.Err(err).Str("func", "shipmentService.Create").Str("track_id", shipment.TrackID).Msg("shipment creation failed")
		return models.Shipment{}, fmt.Errorf("shipment creation failed: %w", err)
	}

	return created, nil
}

// Get returns the shipment only when it is owned by ownerID. A malformed id
// yields ErrInvalidID, anything else not visible to the owner yields
// store.ErrShipmentNotFound.
func (s *shipmentService) Get(ctx context.Context, ownerID, shipmentID string) (models.Shipment, error) {
	if !utils.IsValidUUID(shipmentID) {
		return models.Shipment{}, ErrInvalidID
	}

	return s.shipmentRepository.GetShipment(ctx, ownerID, shipmentID)
}

// List returns one page of the owner's shipments, newest first.
func (s *shipmentService) List(ctx context.Context, filter models.ShipmentFilter) (models.ShipmentPage, error) {
	log := logger.FromContext(ctx)

	filter = NormalizeShipmentFilter(filter)

	shipments, total, err := s.shipmentRepository.ListShipments(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "shipmentService.List").Str("user_id", filter.UserID).Msg("listing shipments failed")
		return models.ShipmentPage{}, fmt.Errorf("listing shipments failed: %w", err)
	}

	summaries := make([]models.ShipmentSummary, 0, len(shipments))
	for _, shipment := range shipments {
		summaries = append(summaries, shipment.Summary())
	}

	return models.ShipmentPage{
		Shipments:   summaries,
		CurrentPage: filter.Page,
		TotalPages:  totalPages(total, filter.Limit),
		TotalItems:  total,
	}, nil
}

// UpdateStatus sets a new status on an owned shipment and publishes a
// shipment_status notification for the owner. Publishing failures are
// logged and do not fail the update.
func (s *shipmentService) UpdateStatus(ctx context.Context, ownerID, shipmentID string, request models.UpdateStatusRequest) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !utils.IsValidUUID(shipmentID) {
		return models.Shipment{}, ErrInvalidID
	}

	status := models.ShipmentStatus(strings.TrimSpace(request.Status))

	if s.strictTransitions {
		current, err := s.shipmentRepository.GetShipment(ctx, ownerID, shipmentID)
		if err != nil {
			return models.Shipment{}, err
		}
		if !current.Status.CanTransition(status) {
			log.Info().
				Str("func", "shipmentService.UpdateStatus").
				Str("from", string(current.Status)).
				Str("to", string(status)).
				Msg("status transition rejected")
			return models.Shipment{}, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, current.Status, status)
		}
	}

	updated, err := s.shipmentRepository.UpdateShipmentStatus(ctx, ownerID, shipmentID, status)
	if err != nil {
		return models.Shipment{}, err
	}

	event := models.NotificationEvent{
		UserID:     ownerID,
		Title:      fmt.Sprintf("Shipment %s status updated to %s", updated.TrackID, updated.Status),
		Type:       models.NotificationShipmentStatus,
		Related:    &models.EntityRef{Kind: models.EntityShipment, ID: updated.ID},
		OccurredAt: updated.UpdatedAt,
	}
	if err = s.publisher.Publish(ctx, event); err != nil {
		log.Err(err).
			Str("func", "shipmentService.UpdateStatus").
			Str("shipment_id", updated.ID).
			Msg("publishing status notification failed")
	}

	return updated, nil
}

func (s *shipmentService) Counts(ctx context.Context, ownerID string) (models.ShipmentCounts, error) {
	return s.shipmentRepository.CountShipments(ctx, ownerID)
}

// NormalizeShipmentFilter applies the paging defaults: non-positive pages
// become 1, non-positive limits become DefaultLimit and limits above
// MaxLimit are capped. Pages whose offset would not fit in an int are
// clamped to the last addressable page, which lists nothing.
func NormalizeShipmentFilter(filter models.ShipmentFilter) models.ShipmentFilter {
	if filter.Page <= 0 {
		filter.Page = DefaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	if maxPage := math.MaxInt / filter.Limit; filter.Page > maxPage {
		filter.Page = maxPage
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Status = models.ShipmentStatus(strings.TrimSpace(string(filter.Status)))
	return filter
}

func totalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
