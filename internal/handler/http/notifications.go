package http

import (
	"net/http"

	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/models"
	"github.com/go-chi/chi/v5"
)

const (
	msgNotificationRead    = "Notification marked as read"
	msgAllNotificationRead = "All notifications marked as read"
	msgNotificationDeleted = "Notification deleted successfully"
)

var notificationNotFound = errorMessage{store.ErrNotificationNotFound, msgNotificationNotFound}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	notifications, err := h.services.NotificationService.List(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, msgServerError)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	utils.WriteJSON(w, models.NotificationList{
		Success: true,
		Count:   len(notifications),
		Data:    notifications,
	}, http.StatusOK)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	notification, err := h.services.NotificationService.MarkRead(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, msgServerError, notificationNotFound)
		return
	}

	utils.WriteJSON(w, models.NotificationResult{
		Success: true,
		Message: msgNotificationRead,
		Data:    &notification,
	}, http.StatusOK)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	if err := h.services.NotificationService.MarkAllRead(r.Context(), user.ID); err != nil {
		writeServiceError(w, r, err, msgServerError)
		return
	}

	utils.WriteJSON(w, models.NotificationResult{
		Success: true,
		Message: msgAllNotificationRead,
	}, http.StatusOK)
}

func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	if err := h.services.NotificationService.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, msgServerError, notificationNotFound)
		return
	}

	utils.WriteJSON(w, models.NotificationResult{
		Success: true,
		Message: msgNotificationDeleted,
	}, http.StatusOK)
}

// getNotificationRelated resolves the shipment or quote a notification
// points at.
func (h *Handler) getNotificationRelated(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	related, err := h.services.NotificationService.ResolveRelated(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, msgServerError,
			notificationNotFound,
			errorMessage{service.ErrNoRelatedEntity, msgNoRelatedEntity},
			errorMessage{store.ErrShipmentNotFound, msgRelatedNotFound},
			errorMessage{store.ErrQuoteNotFound, msgRelatedNotFound},
		)
		return
	}

	utils.WriteJSON(w, related, http.StatusOK)
}
