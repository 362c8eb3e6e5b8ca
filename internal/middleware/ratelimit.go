package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// RefreshRateLimiter throttles the public refresh endpoint per client IP.
// The dataset cooldown already bounds real refresh work; this only stops a
// single client from hammering the endpoint itself.
func RefreshRateLimiter() gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			// 1 request per 10s with a small burst, entries expire after an hour.
			return rate.NewLimiter(rate.Every(10*time.Second), 3), time.Hour
		},
		func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many refresh requests"})
		},
	)
}
