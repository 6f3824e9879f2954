package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/auth"
	"petclinic/internal/config"
	"petclinic/internal/handler"
	"petclinic/internal/logger"
	"petclinic/internal/metrics"
	"petclinic/internal/model"
)

const testSecret = "router-test-secret"

type memoryTokenStore struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (m *memoryTokenStore) StoreRefreshToken(context.Context, string, auth.RefreshSession, time.Duration) error {
	return nil
}

func (m *memoryTokenStore) GetRefreshToken(context.Context, string) (*auth.RefreshSession, error) {
	return nil, nil
}

func (m *memoryTokenStore) DeleteRefreshToken(context.Context, string) error {
	return nil
}

func (m *memoryTokenStore) BlacklistAccessToken(_ context.Context, tokenID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = true
	return nil
}

func (m *memoryTokenStore) IsAccessTokenBlacklisted(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[tokenID], nil
}

func newTestServer(t *testing.T) (*echo.Echo, *memoryTokenStore) {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics.New(reg).IncrementBooked()

	store := &memoryTokenStore{revoked: map[string]bool{}}
	e := echo.New()
	Register(e, &config.Config{JWTSecret: testSecret}, Handlers{
		Auth:          handler.NewAuthHandler(nil),
		User:          handler.NewUserHandler(nil),
		Pet:           handler.NewPetHandler(nil),
		Appointment:   handler.NewAppointmentHandler(nil),
		MedicalRecord: handler.NewMedicalRecordHandler(nil),
	}, store, reg, logger.Discard())
	return e, store
}

func get(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_PublicEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	rec := get(e, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = get(e, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "petclinic_appointments_booked_total 1"))
}

func TestRegister_SecuredRoutes(t *testing.T) {
	e, store := newTestServer(t)
	jwtService := auth.NewJWTService(testSecret)

	t.Run("missing token", func(t *testing.T) {
		rec := get(e, "/api/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		forged, err := auth.NewJWTService("other-secret").GenerateAccessToken(1, "alice", model.RoleOwner)
		require.NoError(t, err)

		rec := get(e, "/api/me", forged)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler with typed claims", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(1, "alice", model.RoleOwner)
		require.NoError(t, err)

		rec := get(e, "/api/me", token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":1,"username":"alice","role":"OWNER"}`, rec.Body.String())
	})

	t.Run("refresh token is not a bearer credential", func(t *testing.T) {
		_, refresh, err := jwtService.GenerateRefreshToken(1, "alice", model.RoleOwner)
		require.NoError(t, err)

		rec := get(e, "/api/me", refresh)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("revoked token is refused", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(1, "alice", model.RoleOwner)
		require.NoError(t, err)
		tokenID, err := jwtService.ExtractTokenID(token)
		require.NoError(t, err)
		require.NoError(t, store.BlacklistAccessToken(context.Background(), tokenID, time.Minute))

		rec := get(e, "/api/me", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
	})
}
