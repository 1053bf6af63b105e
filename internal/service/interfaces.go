package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-logistics/models"
)

// AuthService registers and authenticates users and issues their tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.PublicUser, models.Token, error)
	Login(ctx context.Context, request models.LoginRequest) (models.PublicUser, models.Token, error)
	GetUser(ctx context.Context, userID string) (models.PublicUser, error)
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves the authenticated user's own views.
type UserService interface {
	Dashboard(ctx context.Context, userID string) (models.Dashboard, error)
}

// ShipmentService manages shipments on behalf of their owner.
type ShipmentService interface {
	Create(ctx context.Context, ownerID string, request models.CreateShipmentRequest) (models.Shipment, error)
	Get(ctx context.Context, ownerID, shipmentID string) (models.Shipment, error)
	List(ctx context.Context, filter models.ShipmentFilter) (models.ShipmentPage, error)
	UpdateStatus(ctx context.Context, ownerID, shipmentID string, request models.UpdateStatusRequest) (models.Shipment, error)
	Counts(ctx context.Context, ownerID string) (models.ShipmentCounts, error)
}

// QuoteService prices and records shipping quotes.
type QuoteService interface {
	Estimate(ctx context.Context, request models.QuoteRequest) (models.Quote, error)
	Get(ctx context.Context, quoteID string) (models.Quote, error)
}

// NotificationService manages per-user notifications. Create is internal:
// it is reached only through an [EventPublisher].
type NotificationService interface {
	Create(ctx context.Context, event models.NotificationEvent) (models.Notification, error)
	List(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) (models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, notificationID string) error
	ResolveRelated(ctx context.Context, userID, notificationID string) (models.RelatedEntity, error)
	// DeleteExpired removes notifications created before the cutoff.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// EventPublisher delivers notification events to the notification store,
// either in-process or through a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event models.NotificationEvent) error
}

// DistanceCalculator returns the distance in kilometres between two
// free-form locations.
type DistanceCalculator interface {
	Distance(ctx context.Context, origin, destination string) (int64, error)
}

// AppInfoService exposes build and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}
