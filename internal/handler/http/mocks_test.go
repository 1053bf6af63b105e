package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-logistics/internal/limiter"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/models"
	"github.com/go-chi/chi/v5"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock method falls back to zero values when its func field is nil.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.PublicUser, models.Token, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.PublicUser, models.Token, error)
	getUserFn      func(ctx context.Context, userID string) (models.PublicUser, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.PublicUser, models.Token, error) {
	if m.registerUserFn == nil {
		return models.PublicUser{}, models.Token{}, nil
	}
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.PublicUser, models.Token, error) {
	if m.loginFn == nil {
		return models.PublicUser{}, models.Token{}, nil
	}
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID string) (models.PublicUser, error) {
	if m.getUserFn == nil {
		return testUser, nil
	}
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(context.Context, string) (models.Token, error) {
	return models.Token{SignedString: testToken}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		if tokenString != testToken {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{SignedString: tokenString, UserID: testUser.ID}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	dashboardFn func(ctx context.Context, userID string) (models.Dashboard, error)
}

func (m *mockUserService) Dashboard(ctx context.Context, userID string) (models.Dashboard, error) {
	if m.dashboardFn == nil {
		return models.Dashboard{}, nil
	}
	return m.dashboardFn(ctx, userID)
}

type mockShipmentService struct {
	createFn       func(ctx context.Context, ownerID string, request models.CreateShipmentRequest) (models.Shipment, error)
	getFn          func(ctx context.Context, ownerID, shipmentID string) (models.Shipment, error)
	listFn         func(ctx context.Context, filter models.ShipmentFilter) (models.ShipmentPage, error)
	updateStatusFn func(ctx context.Context, ownerID, shipmentID string, request models.UpdateStatusRequest) (models.Shipment, error)
}

func (m *mockShipmentService) Create(ctx context.Context, ownerID string, request models.CreateShipmentRequest) (models.Shipment, error) {
	if m.createFn == nil {
		return models.Shipment{}, nil
	}
	return m.createFn(ctx, ownerID, request)
}

func (m *mockShipmentService) Get(ctx context.Context, ownerID, shipmentID string) (models.Shipment, error) {
	if m.getFn == nil {
		return models.Shipment{}, nil
	}
	return m.getFn(ctx, ownerID, shipmentID)
}

func (m *mockShipmentService) List(ctx context.Context, filter models.ShipmentFilter) (models.ShipmentPage, error) {
	if m.listFn == nil {
		return models.ShipmentPage{}, nil
	}
	return m.listFn(ctx, filter)
}

func (m *mockShipmentService) UpdateStatus(ctx context.Context, ownerID, shipmentID string, request models.UpdateStatusRequest) (models.Shipment, error) {
	if m.updateStatusFn == nil {
		return models.Shipment{}, nil
	}
	return m.updateStatusFn(ctx, ownerID, shipmentID, request)
}

func (m *mockShipmentService) Counts(context.Context, string) (models.ShipmentCounts, error) {
	return models.ShipmentCounts{}, nil
}

type mockQuoteService struct {
	estimateFn func(ctx context.Context, request models.QuoteRequest) (models.Quote, error)
}

func (m *mockQuoteService) Estimate(ctx context.Context, request models.QuoteRequest) (models.Quote, error) {
	if m.estimateFn == nil {
		return models.Quote{}, nil
	}
	return m.estimateFn(ctx, request)
}

func (m *mockQuoteService) Get(context.Context, string) (models.Quote, error) {
	return models.Quote{}, nil
}

type mockNotificationService struct {
	listFn           func(ctx context.Context, userID string) ([]models.Notification, error)
	markReadFn       func(ctx context.Context, userID, notificationID string) (models.Notification, error)
	markAllReadFn    func(ctx context.Context, userID string) error
	deleteFn         func(ctx context.Context, userID, notificationID string) error
	resolveRelatedFn func(ctx context.Context, userID, notificationID string) (models.RelatedEntity, error)
}

func (m *mockNotificationService) Create(context.Context, models.NotificationEvent) (models.Notification, error) {
	return models.Notification{}, nil
}

func (m *mockNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, userID)
}

func (m *mockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) (models.Notification, error) {
	if m.markReadFn == nil {
		return models.Notification{}, nil
	}
	return m.markReadFn(ctx, userID, notificationID)
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if m.markAllReadFn == nil {
		return nil
	}
	return m.markAllReadFn(ctx, userID)
}

func (m *mockNotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, userID, notificationID)
}

func (m *mockNotificationService) ResolveRelated(ctx context.Context, userID, notificationID string) (models.RelatedEntity, error) {
	if m.resolveRelatedFn == nil {
		return models.RelatedEntity{}, nil
	}
	return m.resolveRelatedFn(ctx, userID, notificationID)
}

func (m *mockNotificationService) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type mockAppInfoService struct {
	version string
	health  error
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.version }
func (m *mockAppInfoService) Health(context.Context) error { return m.health }

type mockLimiter struct {
	allowFn func(ctx context.Context, key string) (limiter.Decision, error)
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (limiter.Decision, error) {
	return m.allowFn(ctx, key)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testToken = "valid.jwt.token"

var testUser = models.PublicUser{
	ID:        "0190b0d8-7a5c-7000-8000-000000000001",
	FirstName: "Ada",
	LastName:  "Obi",
	Email:     "ada@example.com",
}

// fillServices replaces every nil service with a zero-value mock.
func fillServices(s *service.Services) *service.Services {
	if s.AuthService == nil {
		s.AuthService = &mockAuthService{}
	}
	if s.UserService == nil {
		s.UserService = &mockUserService{}
	}
	if s.ShipmentService == nil {
		s.ShipmentService = &mockShipmentService{}
	}
	if s.QuoteService == nil {
		s.QuoteService = &mockQuoteService{}
	}
	if s.NotificationService == nil {
		s.NotificationService = &mockNotificationService{}
	}
	if s.AppInfoService == nil {
		s.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return s
}

// newTestRouter returns the full router over the given services.
func newTestRouter(t *testing.T, s *service.Services, opts ...Option) chi.Router {
	t.Helper()
	return NewHandler(fillServices(s), logger.Nop(), opts...).Init()
}

// do sends a request through router. Authenticated requests carry testToken.
func do(router http.Handler, method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
