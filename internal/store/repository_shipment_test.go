// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shipmentCols = []string{"id", "user_id", "track_id", "product_name", "source", "destination", "expected_date", "status", "type", "created_at", "updated_at"}

func newTestShipmentRepo(t *testing.T) (*shipmentRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &shipmentRepository{DB: db, logger: logger.Nop()}, mock
}

func sampleShipment() models.Shipment {
	return models.Shipment{
		ID:           "s-1",
		UserID:       "u-1",
		TrackID:      "TRK-001",
		ProductName:  "Cocoa beans",
		Source:       "Lagos",
		Destination:  "Rotterdam",
		ExpectedDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:       models.StatusPending,
		Type:         models.TypeExport,
	}
}

func shipmentRow(rows *sqlmock.Rows, s models.Shipment, created time.Time) *sqlmock.Rows {
	return rows.AddRow(s.ID, s.UserID, s.TrackID, s.ProductName, s.Source, s.Destination, s.ExpectedDate, string(s.Status), string(s.Type), created, created)
}

// ─── CreateShipment ──────────────────────────────────────────────────────────

func TestShipmentRepository_Create_Success(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)
	s := sampleShipment()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO shipments").
		WithArgs(s.ID, s.UserID, s.TrackID, s.ProductName, s.Source, s.Destination, s.ExpectedDate, "Pending", "Export").
		WillReturnRows(shipmentRow(sqlmock.NewRows(shipmentCols), s, now))

	created, err := repo.CreateShipment(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, s.TrackID, created.TrackID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, models.TypeExport, created.Type)
	assert.True(t, created.CreatedAt.Equal(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_Create_DuplicateTrackID(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)

	mock.ExpectQuery("INSERT INTO shipments").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateShipment(context.Background(), sampleShipment())
	assert.ErrorIs(t, err, ErrTrackIDAlreadyExists)
}

func TestShipmentRepository_Create_DBError(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)

	mock.ExpectQuery("INSERT INTO shipments").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateShipment(context.Background(), sampleShipment())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrTrackIDAlreadyExists)
}

// ─── GetShipment ─────────────────────────────────────────────────────────────

func TestShipmentRepository_Get(t *testing.T) {
	s := sampleShipment()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "owned shipment",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM shipments WHERE id = \\$1 AND user_id = \\$2").
					WithArgs("s-1", "u-1").
					WillReturnRows(shipmentRow(sqlmock.NewRows(shipmentCols), s, time.Now()))
			},
		},
		{
			name: "foreign or missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM shipments").
					WithArgs("s-1", "u-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrShipmentNotFound,
		},
		{
			name: "driver failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM shipments").
					WithArgs("s-1", "u-1").
					WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestShipmentRepo(t)
			tt.setup(mock)

			got, err := repo.GetShipment(context.Background(), "u-1", "s-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "s-1", got.ID)
		})
	}
}

// ─── ListShipments ───────────────────────────────────────────────────────────

func TestShipmentRepository_List_Success(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)
	s := sampleShipment()
	second := sampleShipment()
	second.ID, second.TrackID = "s-2", "TRK-002"

	filter := models.ShipmentFilter{UserID: "u-1", Search: "trk", Page: 2, Limit: 2}

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM shipments").
		WithArgs("u-1", "%trk%", "%trk%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	rows := sqlmock.NewRows(shipmentCols)
	shipmentRow(rows, second, time.Now())
	shipmentRow(rows, s, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM shipments (.+) ORDER BY created_at DESC").
		WithArgs("u-1", "%trk%", "%trk%").
		WillReturnRows(rows)

	shipments, total, err := repo.ListShipments(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, shipments, 2)
	assert.Equal(t, "s-2", shipments[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_List_Empty(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM shipments").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(shipmentCols))

	shipments, total, err := repo.ListShipments(context.Background(), models.ShipmentFilter{UserID: "u-1", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, shipments)
	assert.Empty(t, shipments)
}

func TestShipmentRepository_List_CountError(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, _, err := repo.ListShipments(context.Background(), models.ShipmentFilter{UserID: "u-1", Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestShipmentRepository_List_RowError(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	rows := shipmentRow(sqlmock.NewRows(shipmentCols), sampleShipment(), time.Now()).
		RowError(0, errors.New("row broken"))
	mock.ExpectQuery("SELECT (.+) FROM shipments").WillReturnRows(rows)

	_, _, err := repo.ListShipments(context.Background(), models.ShipmentFilter{UserID: "u-1", Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ─── UpdateShipmentStatus ────────────────────────────────────────────────────

func TestShipmentRepository_UpdateStatus_Success(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)
	s := sampleShipment()
	s.Status = models.StatusShipped

	mock.ExpectQuery("UPDATE shipments SET status = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2 AND user_id = \\$3 RETURNING").
		WithArgs("Shipped", "s-1", "u-1").
		WillReturnRows(shipmentRow(sqlmock.NewRows(shipmentCols), s, time.Now()))

	updated, err := repo.UpdateShipmentStatus(context.Background(), "u-1", "s-1", models.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, updated.Status)
}

func TestShipmentRepository_UpdateStatus_NotOwned(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)

	mock.ExpectQuery("UPDATE shipments").
		WithArgs("Shipped", "s-1", "u-2").
		WillReturnRows(sqlmock.NewRows(shipmentCols))

	_, err := repo.UpdateShipmentStatus(context.Background(), "u-2", "s-1", models.StatusShipped)
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

// ─── CountShipments ──────────────────────────────────────────────────────────

func TestShipmentRepository_Count(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)

	mock.ExpectQuery("SELECT (.+) FILTER (.+) FROM shipments WHERE user_id").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"total", "exports", "imports"}).AddRow(7, 4, 3))

	counts, err := repo.CountShipments(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentCounts{Total: 7, Exports: 4, Imports: 3}, counts)
}

func TestShipmentRepository_Count_Error(t *testing.T) {
	repo, mock := newTestShipmentRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.CountShipments(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
