package service

import (
	"time"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
)

type Services struct {
	AuthService         AuthService
	UserService         UserService
	ShipmentService     ShipmentService
	QuoteService        QuoteService
	NotificationService NotificationService
	AppInfoService      AppInfoService
}

type options struct {
	publisher EventPublisher
	distances DistanceCalculator
	now       func() time.Time
}

// Option customizes NewServices.
type Option func(*options)

// WithEventPublisher routes shipment events through p instead of creating
// notifications in-process.
func WithEventPublisher(p EventPublisher) Option {
	return func(o *options) { o.publisher = p }
}

func WithDistanceCalculator(d DistanceCalculator) Option {
	return func(o *options) { o.distances = d }
}

// WithClock replaces time.Now for token issuing and verification.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger, opts ...Option) (*Services, error) {
	o := options{
		distances: NewRandomDistanceCalculator(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var health store.HealthChecker
	if storages.DB != nil {
		health = storages.DB
	}

	appInfoService, err := NewAppInfoService(cfg.App, health, logger)
	if err != nil {
		return nil, err
	}

	notificationService := NewNotificationService(
		storages.NotificationRepository,
		storages.ShipmentRepository,
		storages.QuoteRepository,
		logger,
	)

	publisher := o.publisher
	if publisher == nil {
		publisher = NewInProcessPublisher(notificationService, logger)
	}

	return &Services{
		AuthService:         newAuthService(storages.UserRepository, cfg.App, utils.NewUUIDGenerator(), o.now, logger),
		UserService:         NewUserService(storages.UserRepository, storages.ShipmentRepository, logger),
		ShipmentService:     NewShipmentService(storages.ShipmentRepository, publisher, cfg.App, logger),
		QuoteService:        NewQuoteService(storages.QuoteRepository, o.distances, cfg.App, logger),
		NotificationService: notificationService,
		AppInfoService:      appInfoService,
	}, nil
}
