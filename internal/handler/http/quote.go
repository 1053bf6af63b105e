package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/internal/validators"
	"github.com/MKhiriev/go-logistics/models"
)

// createQuote prices a parcel. Unlike the rest of the API its error bodies
// are {"error": "..."}.
func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.QuoteRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		log.Debug().Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.QuoteErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	quote, err := h.services.QuoteService.Estimate(r.Context(), request)
	if err != nil {
		status := http.StatusInternalServerError
		message := msgQuoteServerError

		switch {
		case errors.Is(err, validators.ErrInvalidWeight):
			status, message = http.StatusBadRequest, msgQuoteInvalidWeight
		case errors.Is(err, service.ErrInvalidDataProvided):
			status, message = http.StatusBadRequest, msgQuoteMissingFields
		default:
			log.Err(err).Str("func", "Handler.createQuote").Msg("quote estimation failed")
		}

		utils.WriteJSON(w, models.QuoteErrorResponse{Error: message}, status)
		return
	}

	log.Debug().Str("quote_id", quote.ID).Int64("distance_km", quote.DistanceKm).Msg("quote created")

	utils.WriteJSON(w, quote.Response(), http.StatusCreated)
}
