package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// IdempotencyHeaderKey is the request header carrying the client-chosen key
const IdempotencyHeaderKey = "Idempotency-Key"

const maxIdempotencyKeyLength = 128

// IdempotencyMiddlewareConfig holds configuration for idempotency middleware
type IdempotencyMiddlewareConfig struct {
	// Store tracks which keys have been seen
	Store shared.IdempotencyStore
	// TTL is how long a key stays reserved
	TTL time.Duration
	// Methods are the HTTP methods subject to idempotency checks
	Methods []string
	// Required rejects requests on covered methods that carry no key
	Required bool
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultIdempotencyConfig returns default idempotency middleware configuration
func DefaultIdempotencyConfig(store shared.IdempotencyStore, ttl time.Duration) IdempotencyMiddlewareConfig {
	return IdempotencyMiddlewareConfig{
		Store:    store,
		TTL:      ttl,
		Methods:  []string{http.MethodPost},
		Required: false,
		Logger:   nil,
	}
}

// IdempotencyMiddleware rejects replays of mutating requests that carry an
// Idempotency-Key header. Keys are scoped per tenant and per route so the
// same key can be reused against different endpoints.
func IdempotencyMiddleware(store shared.IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return IdempotencyMiddlewareWithConfig(DefaultIdempotencyConfig(store, ttl))
}

// IdempotencyMiddlewareWithConfig returns idempotency middleware with custom configuration
func IdempotencyMiddlewareWithConfig(cfg IdempotencyMiddlewareConfig) gin.HandlerFunc {
	covered := make(map[string]bool, len(cfg.Methods))
	for _, m := range cfg.Methods {
		covered[strings.ToUpper(m)] = true
	}

	return func(c *gin.Context) {
		if !covered[c.Request.Method] {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyHeaderKey)
		if key == "" {
			if cfg.Required {
				requestID := getRequestIDFromContext(c)
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
					dto.ErrCodeBadRequest,
					"Idempotency-Key header is required",
					requestID,
				))
				return
			}
			c.Next()
			return
		}

		if len(key) > maxIdempotencyKeyLength {
			requestID := getRequestIDFromContext(c)
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeBadRequest,
				"Idempotency-Key header exceeds maximum length",
				requestID,
			))
			return
		}

		scopedKey := buildIdempotencyKey(c, key)

		fresh, err := cfg.Store.MarkProcessed(c.Request.Context(), scopedKey, cfg.TTL)
		if err != nil {
			// Store failure must not take the write path down
			if cfg.Logger != nil {
				cfg.Logger.Warn("Idempotency store unavailable, allowing request",
					zap.Error(err),
					zap.String("path", c.Request.URL.Path),
				)
			}
			c.Next()
			return
		}

		if !fresh {
			requestID := getRequestIDFromContext(c)
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeConflict,
				"A request with this Idempotency-Key was already processed",
				requestID,
			))
			return
		}

		c.Next()
	}
}

// buildIdempotencyKey scopes the client key by tenant, method and path
func buildIdempotencyKey(c *gin.Context, key string) string {
	var b strings.Builder
	if tenantID := GetTenantID(c); tenantID != "" {
		b.WriteString(tenantID)
		b.WriteString(":")
	}
	b.WriteString(c.Request.Method)
	b.WriteString(":")
	b.WriteString(c.Request.URL.Path)
	b.WriteString(":")
	b.WriteString(key)
	return b.String()
}
