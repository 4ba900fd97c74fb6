package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSWithConfig(cfg))
	router.GET("/api/v1/vendors", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func doCORSRequest(router *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/vendors", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := newCORSRouter(CORSConfig{
		AllowOrigins:     []string{"https://procure.example.com"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	w := doCORSRequest(router, "GET", "https://procure.example.com")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://procure.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	router := newCORSRouter(CORSConfig{
		AllowOrigins: []string{"https://procure.example.com"},
	})

	w := doCORSRequest(router, "GET", "https://evil.example.com")

	// Request still served, but no CORS headers so the browser blocks it.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_EmptyWhitelistRejectsCrossOrigin(t *testing.T) {
	router := newCORSRouter(CORSConfig{})

	w := doCORSRequest(router, "GET", "https://anywhere.example.com")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_WildcardOrigin(t *testing.T) {
	router := newCORSRouter(CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
	})

	w := doCORSRequest(router, "GET", "https://anywhere.example.com")

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	// Credentials are never paired with a wildcard origin.
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	router := newCORSRouter(CORSConfig{
		AllowOrigins: []string{"https://procure.example.com"},
		AllowMethods: []string{"GET", "POST", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
	})

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		w := doCORSRequest(router, "OPTIONS", "https://procure.example.com")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://procure.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, DELETE", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("disallowed origin gets bare 204", func(t *testing.T) {
		w := doCORSRequest(router, "OPTIONS", "https://evil.example.com")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestResolveOrigin(t *testing.T) {
	allow := []string{"https://a.example.com", "https://b.example.com"}

	assert.Equal(t, "https://b.example.com", resolveOrigin(allow, false, "https://b.example.com"))
	assert.Empty(t, resolveOrigin(allow, false, "https://c.example.com"))
	assert.Empty(t, resolveOrigin(allow, false, ""))
	assert.Equal(t, "*", resolveOrigin([]string{"*"}, true, "https://c.example.com"))
}
