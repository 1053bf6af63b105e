package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/models"
	"github.com/jackc/pgerrcode"
)

// shipmentRepository is the PostgreSQL-backed implementation of
// [ShipmentRepository]. Ownership is enforced in SQL: every query other
// than the insert filters on user_id, so a foreign shipment looks exactly
// like a missing one.
type shipmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewShipmentRepository constructs a [ShipmentRepository] backed by db.
func NewShipmentRepository(db *DB, logger *logger.Logger) ShipmentRepository {
	logger.Debug().Msg("creating shipment repository")
	return &shipmentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateShipment inserts shipment. The track id is globally unique: a
// unique_violation is reported as [ErrTrackIDAlreadyExists].
func (s *shipmentRepository) CreateShipment(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, createShipment,
		shipment.ID,
		shipment.UserID,
		shipment.TrackID,
		shipment.ProductName,
		shipment.Source,
		shipment.Destination,
		shipment.ExpectedDate,
		string(shipment.Status),
		string(shipment.Type),
	)

	created, err := scanShipment(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Shipment{}, ErrTrackIDAlreadyExists
		}
		log.Err(err).
			Str("func", "shipmentRepository.CreateShipment").
			Str("user_id", shipment.UserID).
			Msg("failed to insert shipment")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetShipment returns the shipment with id owned by ownerID.
func (s *shipmentRepository) GetShipment(ctx context.Context, ownerID, id string) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	shipment, err := scanShipment(s.DB.QueryRowContext(ctx, getShipment, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Shipment{}, ErrShipmentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "shipmentRepository.GetShipment").
			Str("shipment_id", id).
			Msg("failed to get shipment")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return shipment, nil
}

// ListShipments returns the requested page and the total number of rows
// matching filter. Filter.Page and Filter.Limit must already be normalized.
func (s *shipmentRepository) ListShipments(ctx context.Context, filter models.ShipmentFilter) ([]models.Shipment, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountShipmentsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "shipmentRepository.ListShipments").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = s.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "shipmentRepository.ListShipments").
			Str("user_id", filter.UserID).
			Msg("failed to count shipments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListShipmentsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "shipmentRepository.ListShipments").Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "shipmentRepository.ListShipments").
			Str("user_id", filter.UserID).
			Msg("failed to list shipments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shipments := make([]models.Shipment, 0, filter.Limit)
	for rows.Next() {
		shipment, scanErr := scanShipment(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "shipmentRepository.ListShipments").
				Msg("failed to scan shipment row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		shipments = append(shipments, shipment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "shipmentRepository.ListShipments").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shipments, total, nil
}

// UpdateShipmentStatus sets status and refreshes updated_at. It returns
// [ErrShipmentNotFound] when no row owned by ownerID has the given id.
func (s *shipmentRepository) UpdateShipmentStatus(ctx context.Context, ownerID, id string, status models.ShipmentStatus) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateShipmentStatusQuery(ownerID, id, status)
	if err != nil {
		log.Err(err).Str("func", "shipmentRepository.UpdateShipmentStatus").Msg("failed to build query")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanShipment(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Shipment{}, ErrShipmentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "shipmentRepository.UpdateShipmentStatus").
			Str("shipment_id", id).
			Msg("failed to update shipment status")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// CountShipments returns the owner's total, export and import counts in a
// single round trip.
func (s *shipmentRepository) CountShipments(ctx context.Context, ownerID string) (models.ShipmentCounts, error) {
	log := logger.FromContext(ctx)

	var counts models.ShipmentCounts
	err := s.DB.QueryRowContext(ctx, countShipments, ownerID).Scan(&counts.Total, &counts.Exports, &counts.Imports)
	if err != nil {
		log.Err(err).
			Str("func", "shipmentRepository.CountShipments").
			Str("user_id", ownerID).
			Msg("failed to count shipments")
		return models.ShipmentCounts{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return counts, nil
}

func scanShipment(row rowScanner) (models.Shipment, error) {
	var (
		shipment models.Shipment
		status   string
		kind     string
	)
	err := row.Scan(
		&shipment.ID,
		&shipment.UserID,
		&shipment.TrackID,
		&shipment.ProductName,
		&shipment.Source,
		&shipment.Destination,
		&shipment.ExpectedDate,
		&status,
		&kind,
		&shipment.CreatedAt,
		&shipment.UpdatedAt,
	)
	shipment.Status = models.ShipmentStatus(status)
	shipment.Type = models.ShipmentType(kind)
	return shipment, err
}
