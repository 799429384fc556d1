package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"course-marketplace/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitByIP throttles by client IP. Store errors let the request through.
func RateLimitByIP(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		retryAfter, allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err, "path", c.Request.URL.Path)
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Too many requests"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
