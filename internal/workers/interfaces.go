// Package workers holds the background jobs that run next to the HTTP
// server: the notification retention sweep and the broker event consumer.
// A Workers aggregate runs them all under one context.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-logistics/internal/broker"
	"github.com/MKhiriev/go-logistics/models"
)

// Worker is a long-running background job. Run blocks until ctx is
// cancelled or the job fails for good.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// expiredNotificationDeleter is the part of service.NotificationService the
// retention sweep needs.
type expiredNotificationDeleter interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// notificationCreator is the part of service.NotificationService the event
// consumer needs.
type notificationCreator interface {
	Create(ctx context.Context, event models.NotificationEvent) (models.Notification, error)
}

// eventConsumer is implemented by *broker.Consumer.
type eventConsumer interface {
	Run(ctx context.Context, handle broker.Handler) error
}
