package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS builds the CORS middleware for the configured origins. It
// returns nil when no origin is configured, since an empty allow-list makes
// cors allow every origin.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	if len(h.allowedOrigins) == 0 {
		return nil
	}

	c := cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}
