// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/internal/validators"
	"github.com/MKhiriev/go-logistics/models"
	"github.com/go-chi/chi/v5"
)

const (
	msgShipmentCreated = "Shipment created successfully!"
	msgShipmentUpdated = "Shipment status updated successfully!"
)

// listShipments serves both /shipments and /recent-shipments. Paging and
// filtering come from the page, limit, search and status query parameters;
// values that do not parse fall back to the defaults.
func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	filter := models.ShipmentFilter{
		UserID: user.ID,
		Search: query.Get("search"),
		Status: models.ShipmentStatus(query.Get("status")),
		Page:   queryInt(query.Get("page")),
		Limit:  queryInt(query.Get("limit")),
	}

	page, err := h.services.ShipmentService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, msgServerError)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	var request models.CreateShipmentRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		log.Debug().Err(err).Msg(msgInvalidJSON)
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	shipment, err := h.services.ShipmentService.Create(ctx, user.ID, request)
	if err != nil {
		writeServiceError(w, r, err, msgServerError,
			errorMessage{validators.ErrMissingRequiredFields, msgMissingShipmentFields},
			errorMessage{validators.ErrInvalidExpectedDate, msgInvalidExpectedDate},
			errorMessage{validators.ErrInvalidStatus, invalidStatusMessage(request.Status)},
			errorMessage{validators.ErrInvalidType, invalidTypeMessage(request.Type)},
			errorMessage{store.ErrTrackIDAlreadyExists, msgTrackIDTaken},
		)
		return
	}

	log.Info().Str("shipment_id", shipment.ID).Str("track_id", shipment.TrackID).Msg("shipment created")

	utils.WriteJSON(w, models.ShipmentResponse{
		Message:  msgShipmentCreated,
		Shipment: shipment,
	}, http.StatusCreated)
}

func (h *Handler) getShipment(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	shipment, err := h.services.ShipmentService.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, msgServerError,
			errorMessage{service.ErrInvalidID, msgInvalidShipmentID},
			errorMessage{store.ErrShipmentNotFound, msgShipmentNotViewable},
		)
		return
	}

	utils.WriteJSON(w, shipment, http.StatusOK)
}

func (h *Handler) updateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteError(w, msgTokenFailed, http.StatusUnauthorized)
		return
	}

	var request models.UpdateStatusRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		log.Debug().Err(err).Msg(msgInvalidJSON)
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	shipment, err := h.services.ShipmentService.UpdateStatus(ctx, user.ID, chi.URLParam(r, "id"), request)
	if err != nil {
		writeServiceError(w, r, err, msgServerError,
			errorMessage{validators.ErrStatusRequired, msgStatusRequired},
			errorMessage{validators.ErrInvalidStatus, invalidStatusMessage(request.Status)},
			errorMessage{service.ErrInvalidID, msgInvalidShipmentID},
			errorMessage{service.ErrStatusTransitionNotAllowed, msgTransitionNotAllowed},
			errorMessage{store.ErrShipmentNotFound, msgShipmentNotUpdatable},
		)
		return
	}

	utils.WriteJSON(w, models.ShipmentResponse{
		Message:  msgShipmentUpdated,
		Shipment: shipment,
	}, http.StatusOK)
}

// queryInt parses a positive integer query value and returns 0 otherwise.
func queryInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
