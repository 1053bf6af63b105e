package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/models"
)

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository]. Like shipments, every user-facing query is
// scoped by user_id.
type notificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewNotificationRepository constructs a [NotificationRepository] backed by db.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNotification inserts an unread notification. A nil Related is
// stored as NULL reference columns.
func (n *notificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	var kind, relatedID sql.NullString
	if notification.Related != nil {
		kind = sql.NullString{String: string(notification.Related.Kind), Valid: true}
		relatedID = sql.NullString{String: notification.Related.ID, Valid: true}
	}

	row := n.DB.QueryRowContext(ctx, createNotification,
		notification.ID,
		notification.UserID,
		notification.Title,
		string(notification.Type),
		kind,
		relatedID,
	)

	created, err := scanNotification(row)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.CreateNotification").
			Str("user_id", notification.UserID).
			Msg("failed to insert notification")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListNotifications returns every notification of userID, newest first.
// An empty slice is returned when there are none.
func (n *notificationRepository) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	rows, err := n.DB.QueryContext(ctx, listNotifications, userID)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ListNotifications").
			Str("user_id", userID).
			Msg("failed to list notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		notification, scanErr := scanNotification(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "notificationRepository.ListNotifications").
				Msg("failed to scan notification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notifications = append(notifications, notification)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "notificationRepository.ListNotifications").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notifications, nil
}

func (n *notificationRepository) GetNotification(ctx context.Context, userID, id string) (models.Notification, error) {
	return n.queryOne(ctx, "notificationRepository.GetNotification", getNotification, id, userID)
}

func (n *notificationRepository) MarkNotificationRead(ctx context.Context, userID, id string) (models.Notification, error) {
	return n.queryOne(ctx, "notificationRepository.MarkNotificationRead", markNotificationRead, id, userID)
}

func (n *notificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	return n.exec(ctx, "notificationRepository.MarkAllNotificationsRead", markAllNotificationsRead, userID)
}

// DeleteNotification removes one notification of userID. Zero affected
// rows means the notification is missing or foreign.
func (n *notificationRepository) DeleteNotification(ctx context.Context, userID, id string) error {
	affected, err := n.exec(ctx, "notificationRepository.DeleteNotification", deleteNotification, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (n *notificationRepository) DeleteNotificationsBefore(ctx context.Context, before time.Time) (int64, error) {
	return n.exec(ctx, "notificationRepository.DeleteNotificationsBefore", deleteNotificationsBefore, before)
}

func (n *notificationRepository) queryOne(ctx context.Context, funcName, query string, args ...any) (models.Notification, error) {
	log := logger.FromContext(ctx)

	notification, err := scanNotification(n.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Notification{}, ErrNotificationNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("notification query failed")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return notification, nil
}

func (n *notificationRepository) exec(ctx context.Context, funcName, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("notification statement failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func scanNotification(row rowScanner) (models.Notification, error) {
	var (
		notification models.Notification
		kind         string
		relatedKind  sql.NullString
		relatedID    sql.NullString
	)
	err := row.Scan(
		&notification.ID,
		&notification.UserID,
		&notification.Title,
		&kind,
		&relatedKind,
		&relatedID,
		&notification.IsRead,
		&notification.CreatedAt,
	)
	notification.Type = models.NotificationType(kind)
	if relatedKind.Valid && relatedID.Valid {
		notification.Related = &models.EntityRef{
			Kind: models.EntityKind(relatedKind.String),
			ID:   relatedID.String,
		}
	}
	return notification, err
}
