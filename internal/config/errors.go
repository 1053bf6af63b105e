package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings, an out of range
	// bcrypt cost or an empty currency.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address, request
	// timeout or rate limit settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBrokerConfigs indicates a broker URL without a queue name.
	ErrInvalidBrokerConfigs = errors.New("invalid broker configuration")
	// ErrInvalidWorkerConfigs indicates a zero worker interval or TTL.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
