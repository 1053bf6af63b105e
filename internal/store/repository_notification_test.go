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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var notificationCols = []string{"id", "user_id", "title", "type", "related_entity_type", "related_entity_id", "is_read", "created_at"}

func newTestNotificationRepo(t *testing.T) (*notificationRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &notificationRepository{DB: db, logger: logger.Nop()}, mock
}

func TestNotificationRepository_Create_WithReference(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)
	now := time.Now()

	n := models.Notification{
		ID:      "n-1",
		UserID:  "u-1",
		Title:   "Shipment TRK-1 is now Shipped",
		Type:    models.NotificationShipmentStatus,
		Related: &models.EntityRef{Kind: models.EntityShipment, ID: "s-1"},
	}

	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs("n-1", "u-1", n.Title, "shipment_status", "Shipment", "s-1").
		WillReturnRows(sqlmock.NewRows(notificationCols).
			AddRow("n-1", "u-1", n.Title, "shipment_status", "Shipment", "s-1", false, now))

	created, err := repo.CreateNotification(context.Background(), n)
	require.NoError(t, err)
	assert.False(t, created.IsRead)
	require.NotNil(t, created.Related)
	assert.Equal(t, models.EntityShipment, created.Related.Kind)
	assert.Equal(t, "s-1", created.Related.ID)
}

func TestNotificationRepository_Create_WithoutReference(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs("n-1", "u-1", "Welcome", "general", nil, nil).
		WillReturnRows(sqlmock.NewRows(notificationCols).
			AddRow("n-1", "u-1", "Welcome", "general", nil, nil, false, time.Now()))

	created, err := repo.CreateNotification(context.Background(), models.Notification{
		ID: "n-1", UserID: "u-1", Title: "Welcome", Type: models.NotificationGeneral,
	})
	require.NoError(t, err)
	assert.Nil(t, created.Related)
}

func TestNotificationRepository_List(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM notifications WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(notificationCols).
			AddRow("n-2", "u-1", "second", "general", nil, nil, false, now).
			AddRow("n-1", "u-1", "first", "quote_update", "Quote", "q-1", true, now.Add(-time.Hour)))

	list, err := repo.ListNotifications(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n-2", list[0].ID)
	assert.True(t, list[1].IsRead)
	assert.Equal(t, models.EntityQuote, list[1].Related.Kind)
}

func TestNotificationRepository_List_QueryError(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.ListNotifications(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	t.Run("owned", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery("UPDATE notifications SET is_read = TRUE WHERE id = \\$1 AND user_id = \\$2 RETURNING").
			WithArgs("n-1", "u-1").
			WillReturnRows(sqlmock.NewRows(notificationCols).
				AddRow("n-1", "u-1", "t", "general", nil, nil, true, time.Now()))

		n, err := repo.MarkNotificationRead(context.Background(), "u-1", "n-1")
		require.NoError(t, err)
		assert.True(t, n.IsRead)
	})

	t.Run("foreign", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery("UPDATE notifications").
			WithArgs("n-1", "u-2").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.MarkNotificationRead(context.Background(), "u-2", "n-1")
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectExec("UPDATE notifications SET is_read = TRUE WHERE user_id = \\$1 AND is_read = FALSE").
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.MarkAllNotificationsRead(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestNotificationRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing or foreign", affected: 0, wantErr: ErrNotificationNotFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNotificationRepo(t)
			exp := mock.ExpectExec("DELETE FROM notifications WHERE id = \\$1 AND user_id = \\$2").
				WithArgs("n-1", "u-1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteNotification(context.Background(), "u-1", "n-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNotificationRepository_DeleteBefore(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM notifications WHERE created_at < \\$1").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 12))

	removed, err := repo.DeleteNotificationsBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
}
