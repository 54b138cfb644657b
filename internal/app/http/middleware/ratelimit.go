package middleware

import (
	"net/http"
	"time"

	"menu-app/internal/app/metrics"
	"menu-app/internal/platform/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects callers whose per-IP bucket is empty.
func RateLimit(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP(), time.Now()) {
			metrics.RecordRateLimited(c.FullPath())
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
