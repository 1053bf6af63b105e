package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidStatus), http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", store.ErrShipmentNotFound), http.StatusNotFound},
		{store.ErrEmailAlreadyExists, http.StatusBadRequest},
		{fmt.Errorf("%w: ping failed", service.ErrStorageUnavailable), http.StatusServiceUnavailable},
		{store.ErrScanningRows, http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
		{fmt.Errorf("%w: %w", store.ErrShipmentNotFound, store.ErrExecutingQuery), http.StatusInternalServerError},
		{fmt.Errorf("%w: %w", store.ErrUserNotFound, service.ErrTokenIsExpiredOrInvalid), http.StatusUnauthorized},
		{fmt.Errorf("%w: %w", service.ErrInvalidID, store.ErrNotificationNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

// Every sentinel must resolve to its own entry, so no entry is shadowed by
// an earlier one.
func TestErrorStatuses_NoShadowing(t *testing.T) {
	for _, e := range errorStatuses {
		assert.Equal(t, e.status, statusFromError(e.target), e.target.Error())
	}
}

func TestStatusFromError_Deterministic(t *testing.T) {
	err := fmt.Errorf("%w: %w", store.ErrTrackIDAlreadyExists, store.ErrScanningRow)
	for range 50 {
		assert.Equal(t, http.StatusInternalServerError, statusFromError(err))
	}
}

func TestResolveError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	status, msg := resolveError(req, store.ErrShipmentNotFound, msgServerError,
		errorMessage{service.ErrInvalidID, "bad id"},
		errorMessage{store.ErrShipmentNotFound, "gone"},
	)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "gone", msg)

	// no message registered: the status text is used
	status, msg = resolveError(req, service.ErrInvalidID, msgServerError)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, http.StatusText(http.StatusBadRequest), msg)

	// server errors never leak the registered message
	status, msg = resolveError(req, store.ErrExecutingQuery, msgServerError,
		errorMessage{store.ErrExecutingQuery, "select failed"},
	)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, msgServerError, msg)
}

func TestInvalidMessages(t *testing.T) {
	assert.Equal(t,
		"Invalid status: Lost. Must be one of Pending, Processing, Shipped, In Transit, Delivered, Cancelled.",
		invalidStatusMessage("Lost"))
	assert.Equal(t, "Invalid type: Local. Must be one of Export, Import.", invalidTypeMessage("Local"))
}
