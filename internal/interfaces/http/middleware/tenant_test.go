package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/procure/backend/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withTokenClaim simulates the JWT middleware having resolved a tenant
func withTokenClaim(tenantID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(JWTTenantIDKey, tenantID)
		c.Next()
	}
}

func newTenantRouter(cfg TenantConfig, before ...gin.HandlerFunc) (*gin.Engine, *string) {
	router := gin.New()
	for _, mw := range before {
		router.Use(mw)
	}
	router.Use(TenantMiddlewareWithConfig(cfg))

	captured := new(string)
	router.GET("/test", func(c *gin.Context) {
		*captured = GetTenantID(c)
		c.Status(http.StatusOK)
	})
	return router, captured
}

func TestTenantMiddleware_ResolvesFromTokenClaims(t *testing.T) {
	tenantID := uuid.New().String()
	router, captured := newTenantRouter(DefaultTenantConfig(), withTokenClaim(tenantID))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tenantID, *captured)
}

func TestTenantMiddleware_RejectsMissingTenant(t *testing.T) {
	router, _ := newTenantRouter(DefaultTenantConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantMiddleware_RejectsMalformedClaim(t *testing.T) {
	router, _ := newTenantRouter(DefaultTenantConfig(), withTokenClaim("not-a-uuid"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantMiddleware_IgnoresHeaderByDefault(t *testing.T) {
	// X-Tenant-ID must not stand in for a token claim unless the
	// fallback is explicitly enabled
	router, _ := newTenantRouter(DefaultTenantConfig())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(TenantHeaderKey, uuid.New().String())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantMiddleware_HeaderFallbackWhenEnabled(t *testing.T) {
	tenantID := uuid.New().String()
	cfg := DefaultTenantConfig()
	cfg.AllowHeaderFallback = true
	router, captured := newTenantRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(TenantHeaderKey, tenantID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tenantID, *captured)
}

func TestTenantMiddleware_ClaimWinsOverHeader(t *testing.T) {
	claimTenantID := uuid.New().String()
	cfg := DefaultTenantConfig()
	cfg.AllowHeaderFallback = true
	router, captured := newTenantRouter(cfg, withTokenClaim(claimTenantID))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(TenantHeaderKey, uuid.New().String())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, claimTenantID, *captured)
}

func TestTenantMiddleware_SkipPaths(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		skipPaths      []string
		expectedStatus int
	}{
		{"health endpoint skipped", "/health", []string{"/health"}, http.StatusOK},
		{"nested health path skipped", "/health/ready", []string{"/health"}, http.StatusOK},
		{"other path still requires tenant", "/api/orders", []string{"/health"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			cfg := DefaultTenantConfig()
			cfg.SkipPaths = tt.skipPaths
			router.Use(TenantMiddlewareWithConfig(cfg))
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTenantMiddleware_OptionalTenant(t *testing.T) {
	cfg := DefaultTenantConfig()
	cfg.Required = false
	router, captured := newTenantRouter(cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *captured)
}

func TestTenantMiddleware_ContextPropagation(t *testing.T) {
	tenantID := uuid.New().String()

	router := gin.New()
	router.Use(withTokenClaim(tenantID))
	router.Use(TenantMiddleware())
	router.GET("/test", func(c *gin.Context) {
		// repository and service logs read the tenant off the request
		// context, not the gin context
		assert.Equal(t, tenantID, logger.GetTenantID(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetTenantUUID(t *testing.T) {
	tenantID := uuid.New()

	router := gin.New()
	router.Use(withTokenClaim(tenantID.String()))
	router.Use(TenantMiddleware())
	router.GET("/test", func(c *gin.Context) {
		gotUUID, err := GetTenantUUID(c)
		require.NoError(t, err)
		assert.Equal(t, tenantID, gotUUID)
		assert.Equal(t, tenantID, MustGetTenantUUID(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMustGetTenantUUID_Panics(t *testing.T) {
	router := gin.New()
	// no tenant middleware, nothing resolved
	router.GET("/test", func(c *gin.Context) {
		assert.Panics(t, func() {
			MustGetTenantUUID(c)
		})
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDefaultTenantConfig(t *testing.T) {
	cfg := DefaultTenantConfig()

	assert.False(t, cfg.AllowHeaderFallback)
	assert.True(t, cfg.Required)
	assert.Contains(t, cfg.SkipPaths, "/health")
	assert.Contains(t, cfg.SkipPaths, "/ready")
}
