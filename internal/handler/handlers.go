package handler

import (
	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/handler/http"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. CORS origins and the request
// timeout come from cfg; extra options such as the rate limiter are
// appended after them.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	options := append([]http.Option{
		http.WithAllowedOrigins(cfg.AllowedOrigins),
		http.WithRequestTimeout(cfg.RequestTimeout),
	}, opts...)

	return &Handlers{HTTP: http.NewHandler(services, logger, options...)}, nil
}
