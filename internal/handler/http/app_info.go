package http

import (
	"net/http"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}

// healthz reports 503 while the database cannot be reached.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Health(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("health check failed")
		utils.WriteJSON(w, models.HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
