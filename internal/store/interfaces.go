package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-logistics/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned timestamps.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks an account up by its lower-cased email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID looks an account up by id.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// ShipmentRepository persists shipments. Every read and write except
// CreateShipment is scoped to the owning user.
type ShipmentRepository interface {
	CreateShipment(ctx context.Context, shipment models.Shipment) (models.Shipment, error)
	GetShipment(ctx context.Context, ownerID, id string) (models.Shipment, error)
	// ListShipments returns one page of shipments matching filter together
	// with the total number of matching rows.
	ListShipments(ctx context.Context, filter models.ShipmentFilter) ([]models.Shipment, int64, error)
	UpdateShipmentStatus(ctx context.Context, ownerID, id string, status models.ShipmentStatus) (models.Shipment, error)
	CountShipments(ctx context.Context, ownerID string) (models.ShipmentCounts, error)
}

// QuoteRepository persists write-once shipping quotes.
type QuoteRepository interface {
	CreateQuote(ctx context.Context, quote models.Quote) (models.Quote, error)
	GetQuote(ctx context.Context, id string) (models.Quote, error)
}

// NotificationRepository persists per-user notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error)
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	GetNotification(ctx context.Context, userID, id string) (models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id string) (models.Notification, error)
	// MarkAllNotificationsRead returns the number of rows that changed.
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
	DeleteNotification(ctx context.Context, userID, id string) error
	// DeleteNotificationsBefore removes notifications created before the
	// given instant and returns how many were removed.
	DeleteNotificationsBefore(ctx context.Context, before time.Time) (int64, error)
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
