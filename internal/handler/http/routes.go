package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if cors := h.withCORS(); cors != nil {
		router.Use(cors)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)

	// public routes, rate limited when a limiter is configured
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/shipping-quote", h.createQuote)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/profile", h.getProfile)
		r.Get("/dashboard", h.getDashboard)
		r.Get("/shipments", h.listShipments)
		r.Get("/recent-shipments", h.listShipments)
		r.Post("/shipments", h.createShipment)
		r.Get("/shipments/{id}", h.getShipment)
		r.Put("/shipments/{id}/status", h.updateShipmentStatus)
	})

	router.Route("/api/notifications", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listNotifications)
		r.Put("/mark-all-read", h.markAllNotificationsRead)
		r.Put("/{id}/read", h.markNotificationRead)
		r.Get("/{id}/related", h.getNotificationRelated)
		r.Delete("/{id}", h.deleteNotification)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
