package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/pkg/tenancy"
)

// TenantHeader carries the caller's tenant id on every protected request.
const TenantHeader = "X-Tenant-ID"

// tenantMiddleware validates the tenant header and puts the tenant id on the
// request context. Absent or malformed ids are rejected before any handler
// runs.
func tenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(TenantHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
			return
		}
		tenantID, err := tenancy.ParseTenantID(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID must be a UUID"})
			return
		}
		c.Request = c.Request.WithContext(tenancy.WithTenant(c.Request.Context(), tenantID))
		c.Next()
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// requestLogger logs one line per request at debug, errors at warn.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("Request failed", attrs...)
			return
		}
		logger.Debug("Request handled", attrs...)
	}
}
