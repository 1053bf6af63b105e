package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/mock"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	shipments := mock.NewMockShipmentRepository(ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), testUserID).Return(models.User{ID: testUserID, FirstName: "Asha", LastName: "Rao"}, nil)
	shipments.EXPECT().CountShipments(gomock.Any(), testUserID).Return(models.ShipmentCounts{Total: 5, Exports: 3, Imports: 2}, nil)

	dash, err := NewUserService(users, shipments, logger.Nop()).Dashboard(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, models.Dashboard{FirstName: "Asha", LastName: "Rao", TotalShipments: 5, TotalExports: 3, TotalImports: 2}, dash)
}

func TestUserService_Dashboard_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	shipments := mock.NewMockShipmentRepository(ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := NewUserService(users, shipments, logger.Nop()).Dashboard(context.Background(), testUserID)

	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_Dashboard_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	shipments := mock.NewMockShipmentRepository(ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).Return(models.User{ID: testUserID}, nil)
	shipments.EXPECT().CountShipments(gomock.Any(), gomock.Any()).Return(models.ShipmentCounts{}, errDB)

	_, err := NewUserService(users, shipments, logger.Nop()).Dashboard(context.Background(), testUserID)

	require.ErrorIs(t, err, errDB)
}
