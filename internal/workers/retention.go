// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
)

// RetentionWorker deletes notifications older than the configured TTL. It
// sweeps once at start and then on every tick.
type RetentionWorker struct {
	notifications expiredNotificationDeleter
	interval      time.Duration
	ttl           time.Duration
	now           func() time.Time

	logger *logger.Logger
}

func NewRetentionWorker(notifications expiredNotificationDeleter, cfg config.Workers, logger *logger.Logger) *RetentionWorker {
	interval := cfg.RetentionInterval
	if interval <= 0 {
		interval = config.DefaultRetentionInterval
	}
	ttl := cfg.NotificationTTL
	if ttl <= 0 {
		ttl = config.DefaultNotificationTTL
	}

	return &RetentionWorker{
		notifications: notifications,
		interval:      interval,
		ttl:           ttl,
		now:           time.Now,
		logger:        logger.WithComponent("retention"),
	}
}

func (r *RetentionWorker) Name() string {
	return "notification-retention"
}

func (r *RetentionWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

// sweep failures are logged and retried on the next tick.
func (r *RetentionWorker) sweep(ctx context.Context) {
	cutoff := r.now().Add(-r.ttl)

	removed, err := r.notifications.DeleteExpired(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Err(err).Str("func", "RetentionWorker.sweep").Msg("notification sweep failed")
		}
		return
	}

	if removed > 0 {
		r.logger.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("expired notifications deleted")
	}
}
