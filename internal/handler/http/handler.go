package http

import (
	"time"

	"github.com/MKhiriev/go-logistics/internal/limiter"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
)

type Handler struct {
	services *service.Services

	limiter        limiter.Limiter
	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures optional middleware of the Handler.
type Option func(*Handler)

// WithRateLimiter guards the public endpoints with l.
func WithRateLimiter(l limiter.Limiter) Option {
	return func(h *Handler) { h.limiter = l }
}

// WithAllowedOrigins enables CORS for the given origins.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.allowedOrigins = origins }
}

func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) { h.requestTimeout = d }
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Bool("rate_limited", h.limiter != nil).
		Strs("allowed_origins", h.allowedOrigins).
		Msg("http handler created")
	return h
}
