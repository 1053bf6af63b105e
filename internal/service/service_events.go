package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/models"
)

// InProcessPublisher delivers events straight to a NotificationService.
// It is used when no broker is configured.
type InProcessPublisher struct {
	notifications NotificationService
	logger        *logger.Logger
}

func NewInProcessPublisher(notifications NotificationService, logger *logger.Logger) *InProcessPublisher {
	return &InProcessPublisher{notifications: notifications, logger: logger}
}

// Publish creates the notification on a context detached from the request so
// that a client hanging up does not drop it.
func (p *InProcessPublisher) Publish(ctx context.Context, event models.NotificationEvent) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	_, err := p.notifications.Create(ctx, event)
	return err
}
