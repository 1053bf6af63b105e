package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token is taken from the "Authorization: Bearer <token>" header and
// validated with [service.AuthService.ParseToken]. The user it names is then
// loaded and stored in the request context with [utils.WithUser], so
// handlers never re-parse the token.
//
// Requests are rejected with 401 when the header carries no bearer token,
// when the token is expired or invalid, or when its user no longer exists.
// Other lookup failures answer 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request without bearer token")
			utils.WriteError(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.GetUser(ctx, token.UserID)
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("user_id", token.UserID).Msg("token names an unknown user")
			utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Err(err).Str("func", "Handler.auth").Msg("user lookup failed")
			utils.WriteError(w, msgServerError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
