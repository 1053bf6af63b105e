package http

import (
	"net/http"

	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
)

// getProfile answers with the identity the auth middleware resolved.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgUserNotFound, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgUserNotFound, http.StatusNotFound)
		return
	}

	dashboard, err := h.services.UserService.Dashboard(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, msgServerError,
			errorMessage{store.ErrUserNotFound, msgUserNotFound},
		)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}
