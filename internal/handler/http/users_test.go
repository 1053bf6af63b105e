package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// getProfile
// ─────────────────────────────────────────────

func TestGetProfile(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := do(router, http.MethodGet, "/api/users/profile", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testUser, got)
}

func TestGetProfile_NoUserInContext(t *testing.T) {
	h := NewHandler(fillServices(&service.Services{}), logger.Nop())
	rec := httptest.NewRecorder()

	h.getProfile(rec, httptest.NewRequest(http.MethodGet, "/api/users/profile", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgUserNotFound, decodeMessage(t, rec))
}

// ─────────────────────────────────────────────
// getDashboard
// ─────────────────────────────────────────────

func TestGetDashboard(t *testing.T) {
	users := &mockUserService{
		dashboardFn: func(_ context.Context, userID string) (models.Dashboard, error) {
			assert.Equal(t, testUser.ID, userID)
			return models.Dashboard{FirstName: "Ada", LastName: "Obi", TotalShipments: 5, TotalExports: 3, TotalImports: 2}, nil
		},
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	rec := do(router, http.MethodGet, "/api/users/dashboard", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"firstName":"Ada","lastName":"Obi","totalShipments":5,"totalExports":3,"totalImports":2}`,
		rec.Body.String())
}

func TestGetDashboard_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"user deleted", store.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
		{"count failed", errors.New("counting shipments failed"), http.StatusInternalServerError, msgServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				dashboardFn: func(context.Context, string) (models.Dashboard, error) {
					return models.Dashboard{}, tt.err
				},
			}
			router := newTestRouter(t, &service.Services{UserService: users})

			rec := do(router, http.MethodGet, "/api/users/dashboard", "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// getServerVersion / healthz
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router := newTestRouter(t, &service.Services{AppInfoService: &mockAppInfoService{version: "1.4.0"}})

	rec := do(router, http.MethodGet, "/api/version", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.4.0", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		health     error
		wantStatus int
		wantBody   string
	}{
		{"ok", nil, http.StatusOK, `{"status":"ok"}`},
		{"db down", service.ErrStorageUnavailable, http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &service.Services{AppInfoService: &mockAppInfoService{health: tt.health}})

			rec := do(router, http.MethodGet, "/healthz", "", false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
