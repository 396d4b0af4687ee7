package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wagate/internal/domain/gateway"
	"wagate/internal/infrastructure/auth"
	"wagate/internal/shared/config"
)

func newAdminRouter(t *testing.T, settingsRepo *mockSettingsRepo, passwordHash string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService("test-secret", 60)
	handler := NewAdminHandler(settingsRepo, jwtService, &config.AuthConfig{
		JWTSecret:         "test-secret",
		AdminPasswordHash: passwordHash,
	}, testLogger())

	router := gin.New()
	router.POST("/api/admin/login", handler.Login)
	router.GET("/api/admin/settings", handler.GetSettings)
	router.PUT("/api/admin/settings", handler.UpdateSettings)
	return router
}

func TestAdminHandler_Login(t *testing.T) {
	hash, err := auth.HashPassword("rahasia")
	require.NoError(t, err)
	router := newAdminRouter(t, &mockSettingsRepo{settings: gateway.DefaultSettings()}, hash)

	t.Run("valid password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"rahasia"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.NotEmpty(t, data["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"salah"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_Login_NotConfigured(t *testing.T) {
	router := newAdminRouter(t, &mockSettingsRepo{settings: gateway.DefaultSettings()}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"apapun"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminHandler_GetSettings(t *testing.T) {
	router := newAdminRouter(t, &mockSettingsRepo{settings: gateway.DefaultSettings()}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, true, data["enabled"])
	assert.Equal(t, gateway.DefaultTitle, data["title"])
	assert.Equal(t, gateway.DefaultTemplate, data["template"])
}

func TestAdminHandler_UpdateSettings(t *testing.T) {
	repo := &mockSettingsRepo{settings: gateway.DefaultSettings()}
	router := newAdminRouter(t, repo, "")

	body := `{"enabled":true,"title":"Bayar via WhatsApp","whatsapp_number":"6281234567890","instructions":"Hubungi kami.","template":"Order {order_id} total Rp {total}","enrich_items":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.settings)
	assert.Equal(t, "6281234567890", repo.settings.WhatsAppNumber())
	assert.True(t, repo.settings.EnrichItems())
}

func TestAdminHandler_UpdateSettings_UnknownPlaceholder(t *testing.T) {
	router := newAdminRouter(t, &mockSettingsRepo{settings: gateway.DefaultSettings()}, "")

	body := `{"enabled":true,"template":"Halo {customer_nickname}"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
