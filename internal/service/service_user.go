package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/models"
)

type userService struct {
	userRepository     store.UserRepository
	shipmentRepository store.ShipmentRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, shipmentRepository store.ShipmentRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:     userRepository,
		shipmentRepository: shipmentRepository,
		logger:             logger,
	}
}

// Dashboard combines the user's name with their shipment totals.
func (u *userService) Dashboard(ctx context.Context, userID string) (models.Dashboard, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Dashboard{}, err
	}

	counts, err := u.shipmentRepository.CountShipments(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.Dashboard").Msg("counting shipments failed")
		return models.Dashboard{}, fmt.Errorf("counting shipments failed: %w", err)
	}

	return models.Dashboard{
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		TotalShipments: counts.Total,
		TotalExports:   counts.Exports,
		TotalImports:   counts.Imports,
	}, nil
}
