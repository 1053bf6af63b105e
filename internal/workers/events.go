package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/models"
)

// EventConsumerWorker turns notification events read from the broker into
// stored notifications.
type EventConsumerWorker struct {
	consumer      eventConsumer
	notifications notificationCreator

	logger *logger.Logger
}

func NewEventConsumerWorker(consumer eventConsumer, notifications notificationCreator, logger *logger.Logger) *EventConsumerWorker {
	return &EventConsumerWorker{
		consumer:      consumer,
		notifications: notifications,
		logger:        logger.WithComponent("event-consumer"),
	}
}

func (e *EventConsumerWorker) Name() string {
	return "notification-events"
}

func (e *EventConsumerWorker) Run(ctx context.Context) error {
	return e.consumer.Run(ctx, e.handle)
}

// handle returns the creation error so the consumer can decide between
// requeue and drop.
func (e *EventConsumerWorker) handle(ctx context.Context, event models.NotificationEvent) error {
	created, err := e.notifications.Create(ctx, event)
	if err != nil {
		return fmt.Errorf("creating notification for user %s: %w", event.UserID, err)
	}

	e.logger.Debug().
		Str("notification_id", created.ID).
		Str("user_id", created.UserID).
		Str("type", string(created.Type)).
		Msg("notification stored from event")
	return nil
}
