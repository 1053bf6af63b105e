package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/internal/validators"
	"github.com/MKhiriev/go-logistics/models"
)

// errorStatus maps a sentinel to the status it is answered with.
type errorStatus struct {
	target error
	status int
}

// errorStatuses is walked in order and the first match wins. Server-side
// failures come first so that they are never reported as client errors,
// then credentials, then missing records, then rejected input.
var errorStatuses = []errorStatus{
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrShipmentNotFound, http.StatusNotFound},
	{store.ErrQuoteNotFound, http.StatusNotFound},
	{store.ErrNotificationNotFound, http.StatusNotFound},
	{service.ErrNoRelatedEntity, http.StatusNotFound},

	// duplicates answer 400 like any other rejected input
	{store.ErrEmailAlreadyExists, http.StatusBadRequest},
	{store.ErrTrackIDAlreadyExists, http.StatusBadRequest},

	{validators.ErrMissingRequiredFields, http.StatusBadRequest},
	{validators.ErrPasswordsDoNotMatch, http.StatusBadRequest},
	{validators.ErrPasswordTooShort, http.StatusBadRequest},
	{validators.ErrStatusRequired, http.StatusBadRequest},
	{validators.ErrInvalidStatus, http.StatusBadRequest},
	{validators.ErrInvalidType, http.StatusBadRequest},
	{validators.ErrInvalidExpectedDate, http.StatusBadRequest},
	{validators.ErrInvalidWeight, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidID, http.StatusBadRequest},
	{service.ErrStatusTransitionNotAllowed, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage pairs a sentinel with the message one endpoint answers it with.
type errorMessage struct {
	target  error
	message string
}

// resolveError returns the status for err and the first matching message.
// Server-side failures are logged and answered with fallback.
func resolveError(r *http.Request, err error, fallback string, messages ...errorMessage) (int, string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		return status, fallback
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	for _, m := range messages {
		if errors.Is(err, m.target) {
			return status, m.message
		}
	}
	return status, http.StatusText(status)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string, messages ...errorMessage) {
	status, message := resolveError(r, err, fallback, messages...)
	utils.WriteError(w, message, status)
}

func invalidStatusMessage(status string) string {
	names := make([]string, 0, len(models.ShipmentStatuses))
	for _, s := range models.ShipmentStatuses {
		names = append(names, string(s))
	}
	return fmt.Sprintf("Invalid status: %s. Must be one of %s.", status, strings.Join(names, ", "))
}

func invalidTypeMessage(shipmentType string) string {
	return fmt.Sprintf("Invalid type: %s. Must be one of %s, %s.", shipmentType, models.TypeExport, models.TypeImport)
}
