// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

const (
	minPasswordHashCost = 10
	maxPasswordHashCost = 12
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be in range %d-%d", ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost)
	}

	if cfg.App.Currency == "" {
		return fmt.Errorf("%w: currency is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Cache.RedisAddress != "" &&
		(cfg.Server.RateLimit.Capacity < 1 || cfg.Server.RateLimit.RefillInterval <= 0) {
		return fmt.Errorf("%w: rate limit capacity and refill interval are required", ErrInvalidServerConfigs)
	}

	if cfg.Broker.URL != "" && cfg.Broker.Queue == "" {
		return ErrInvalidBrokerConfigs
	}

	if cfg.Workers.RetentionInterval <= 0 || cfg.Workers.NotificationTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
