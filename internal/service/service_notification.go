package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/models"
)

// notificationService is the concrete implementation of NotificationService.
// Lookups with a malformed id are reported as store.ErrNotificationNotFound,
// the same as foreign or missing notifications.
type notificationService struct {
	notificationRepository store.NotificationRepository
	shipmentRepository     store.ShipmentRepository
	quoteRepository        store.QuoteRepository
	ids                    idGenerator

	logger *logger.Logger
}

func NewNotificationService(
	notificationRepository store.NotificationRepository,
	shipmentRepository store.ShipmentRepository,
	quoteRepository store.QuoteRepository,
	logger *logger.Logger,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		shipmentRepository:     shipmentRepository,
		quoteRepository:        quoteRepository,
		ids:                    utils.NewUUIDGenerator(),
		logger:                 logger,
	}
}

// Create stores an unread notification described by event. An empty type
// defaults to general.
func (n *notificationService) Create(ctx context.Context, event models.NotificationEvent) (models.Notification, error) {
	if event.Type == "" {
		event.Type = models.NotificationGeneral
	}

	switch {
	case !utils.IsValidUUID(event.UserID):
		return models.Notification{}, fmt.Errorf("%w: bad user id %q", ErrInvalidNotification, event.UserID)
	case strings.TrimSpace(event.Title) == "":
		return models.Notification{}, fmt.Errorf("%w: empty title", ErrInvalidNotification)
	case !event.Type.Valid():
		return models.Notification{}, fmt.Errorf("%w: unknown type %q", ErrInvalidNotification, event.Type)
	case event.Related != nil && (!event.Related.Kind.Valid() || !utils.IsValidUUID(event.Related.ID)):
		return models.Notification{}, fmt.Errorf("%w: bad related entity", ErrInvalidNotification)
	}

	created, err := n.notificationRepository.CreateNotification(ctx, models.Notification{
		ID:      n.ids.Generate(),
		UserID:  event.UserID,
		Title:   strings.TrimSpace(event.Title),
		Type:    event.Type,
		Related: event.Related,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notificationService.Create").Msg("notification creation failed")
		return models.Notification{}, fmt.Errorf("notification creation failed: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("user_id", created.UserID).
		Str("type", string(created.Type)).
		Msg("notification created")

	return created, nil
}

func (n *notificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return n.notificationRepository.ListNotifications(ctx, userID)
}

func (n *notificationService) MarkRead(ctx context.Context, userID, notificationID string) (models.Notification, error) {
	if !utils.IsValidUUID(notificationID) {
		return models.Notification{}, store.ErrNotificationNotFound
	}
	return n.notificationRepository.MarkNotificationRead(ctx, userID, notificationID)
}

// MarkAllRead never fails because nothing was unread.
func (n *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	updated, err := n.notificationRepository.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Int64("updated", updated).Msg("notifications marked as read")
	return nil
}

func (n *notificationService) Delete(ctx context.Context, userID, notificationID string) error {
	if !utils.IsValidUUID(notificationID) {
		return store.ErrNotificationNotFound
	}
	return n.notificationRepository.DeleteNotification(ctx, userID, notificationID)
}

// ResolveRelated loads the entity a notification points at. Shipments are
// resolved within the owner's scope; quotes have no owner.
func (n *notificationService) ResolveRelated(ctx context.Context, userID, notificationID string) (models.RelatedEntity, error) {
	if !utils.IsValidUUID(notificationID) {
		return models.RelatedEntity{}, store.ErrNotificationNotFound
	}

	notification, err := n.notificationRepository.GetNotification(ctx, userID, notificationID)
	if err != nil {
		return models.RelatedEntity{}, err
	}
	if notification.Related == nil {
		return models.RelatedEntity{}, ErrNoRelatedEntity
	}

	ref := notification.Related
	switch ref.Kind {
	case models.EntityShipment:
		shipment, err := n.shipmentRepository.GetShipment(ctx, userID, ref.ID)
		if err != nil {
			return models.RelatedEntity{}, err
		}
		return models.RelatedEntity{Kind: ref.Kind, Shipment: &shipment}, nil

	case models.EntityQuote:
		quote, err := n.quoteRepository.GetQuote(ctx, ref.ID)
		if err != nil {
			return models.RelatedEntity{}, err
		}
		return models.RelatedEntity{Kind: ref.Kind, Quote: &quote}, nil

	default:
		return models.RelatedEntity{}, fmt.Errorf("%w: unknown kind %q", ErrNoRelatedEntity, ref.Kind)
	}
}

func (n *notificationService) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	removed, err := n.notificationRepository.DeleteNotificationsBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("deleting expired notifications failed: %w", err)
	}
	return removed, nil
}
