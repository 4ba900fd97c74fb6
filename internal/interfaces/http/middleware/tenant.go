package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/procure/backend/internal/infrastructure/logger"
)

// Context keys for the resolved tenant.
const (
	TenantIDKey     = "tenant_id"
	TenantHeaderKey = "X-Tenant-ID"
)

// TenantConfig controls tenant resolution. The tenant comes from the
// access token claims that the JWT middleware stored on the context.
type TenantConfig struct {
	// AllowHeaderFallback honors X-Tenant-ID when no token claim is
	// present. Meant for local development against an auth-less setup;
	// leave off in production, the token is the only trusted source.
	AllowHeaderFallback bool
	// SkipPaths bypass tenant resolution entirely (health checks, ping)
	SkipPaths []string
	// Required rejects requests that carry no resolvable tenant
	Required bool
	// Logger for resolution warnings
	Logger *zap.Logger
}

// DefaultTenantConfig returns the production configuration: tenant from
// token claims only, required on every non-skipped path.
func DefaultTenantConfig() TenantConfig {
	return TenantConfig{
		AllowHeaderFallback: false,
		SkipPaths:           []string{"/health", "/healthz", "/ready", "/api/v1/health"},
		Required:            true,
	}
}

// TenantMiddleware resolves the tenant with the default configuration
func TenantMiddleware() gin.HandlerFunc {
	return TenantMiddlewareWithConfig(DefaultTenantConfig())
}

// TenantMiddlewareWithConfig resolves the caller's tenant and stores it
// on the gin context and the request context
func TenantMiddlewareWithConfig(cfg TenantConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip || strings.HasPrefix(path, skip+"/") {
				c.Next()
				return
			}
		}

		tenantID := resolveTenantID(c, cfg)
		if tenantID == "" {
			if cfg.Required {
				abortTenantUnresolved(c, "Tenant identification required")
				return
			}
			c.Next()
			return
		}

		if _, err := uuid.Parse(tenantID); err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Rejected malformed tenant ID",
					zap.String("tenant_id", tenantID),
				)
			}
			abortTenantUnresolved(c, "Invalid tenant ID format")
			return
		}

		c.Set(TenantIDKey, tenantID)

		// propagate into the request context so service and repository
		// logs carry the tenant
		ctx := c.Request.Context()
		ctx, _ = logger.WithTenantID(ctx, logger.FromContext(ctx), tenantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// resolveTenantID reads the tenant from the token claims, consulting the
// X-Tenant-ID header only when the configuration allows the fallback
func resolveTenantID(c *gin.Context, cfg TenantConfig) string {
	if claim, exists := c.Get(JWTTenantIDKey); exists {
		if tid, ok := claim.(string); ok && tid != "" {
			return tid
		}
	}
	if cfg.AllowHeaderFallback {
		return c.GetHeader(TenantHeaderKey)
	}
	return ""
}

func abortTenantUnresolved(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

// GetTenantID retrieves the resolved tenant ID from gin.Context
func GetTenantID(c *gin.Context) string {
	if tenantID, exists := c.Get(TenantIDKey); exists {
		if tid, ok := tenantID.(string); ok {
			return tid
		}
	}
	return ""
}

// GetTenantUUID retrieves the resolved tenant ID as a UUID
func GetTenantUUID(c *gin.Context) (uuid.UUID, error) {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(tenantID)
}

// MustGetTenantUUID retrieves the tenant ID as a UUID or panics. Use
// only behind the tenant middleware where resolution is guaranteed.
func MustGetTenantUUID(c *gin.Context) uuid.UUID {
	tenantUUID, err := GetTenantUUID(c)
	if err != nil || tenantUUID == uuid.Nil {
		panic("valid tenant_id not found in context")
	}
	return tenantUUID
}
