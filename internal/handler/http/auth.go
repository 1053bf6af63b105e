package http

import (
	"net/http"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/internal/validators"
	"github.com/MKhiriev/go-logistics/models"
)

const (
	msgRegistered = "User registered successfully!"
	msgLoggedIn   = "Login successful!"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		log.Debug().Err(err).Msg(msgInvalidJSON)
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeServiceError(w, r, err, msgServerError,
			errorMessage{validators.ErrMissingRequiredFields, msgMissingFields},
			errorMessage{validators.ErrPasswordsDoNotMatch, msgPasswordsMismatch},
			errorMessage{validators.ErrPasswordTooShort, msgPasswordTooShort},
			errorMessage{store.ErrEmailAlreadyExists, msgEmailTaken},
		)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: msgRegistered,
		User:    user,
		Token:   token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		log.Debug().Err(err).Msg(msgInvalidJSON)
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeServiceError(w, r, err, msgServerError,
			errorMessage{validators.ErrMissingRequiredFields, msgMissingLogin},
			errorMessage{service.ErrInvalidCredentials, msgInvalidCreds},
		)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: msgLoggedIn,
		Token:   token.SignedString,
		User:    user,
	}, http.StatusOK)
}
