package config

import "time"

const (
	DefaultTokenIssuer       = "go-logistics"
	DefaultTokenDuration     = time.Hour
	DefaultPasswordHashCost  = 10
	DefaultCurrency          = "NGN"
	DefaultHTTPAddress       = ":5000"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultBrokerQueue       = "notifications.events"
	DefaultRetentionInterval = time.Hour
	DefaultNotificationTTL   = 30 * 24 * time.Hour
	DefaultMaxOpenConns      = 10
	DefaultMaxIdleConns      = 4
	DefaultConnMaxLifetime   = 30 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			Currency:         DefaultCurrency,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			AllowedOrigins:  []string{"http://localhost:3000"},
			RateLimit: RateLimit{
				Capacity:       20,
				RefillInterval: 3 * time.Second,
				TTL:            10 * time.Minute,
				Prefix:         "rl",
			},
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    DefaultMaxOpenConns,
				MaxIdleConns:    DefaultMaxIdleConns,
				ConnMaxLifetime: DefaultConnMaxLifetime,
			},
		},
		Broker: Broker{
			Queue: DefaultBrokerQueue,
		},
		Workers: Workers{
			RetentionInterval: DefaultRetentionInterval,
			NotificationTTL:   DefaultNotificationTTL,
		},
	}
}
