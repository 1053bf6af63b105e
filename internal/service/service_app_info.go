package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/store"
)

// healthPingTimeout bounds a single storage ping.
const healthPingTimeout = 2 * time.Second

type appInfoService struct {
	version string
	storage store.HealthChecker
	timeout time.Duration

	logger *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version. storage may be nil, in which case Health always succeeds.
func NewAppInfoService(cfg config.App, storage store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: cfg.Version,
		storage: storage,
		timeout: healthPingTimeout,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string { return s.version }

// Health pings storage with a short deadline and reports
// ErrStorageUnavailable when it does not answer in time.
func (s *appInfoService) Health(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.storage.Ping(pingCtx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.Health").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
