package middleware

import (
	"net/http"

	"github.com/cooperativa/facturabot/internal/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles inbound webhook calls. The messaging
// gateway retries rejected deliveries with backoff, so shedding load
// with 429 here is safe. A zero configured rate disables the limiter.
func RateLimitMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	rps := cfg.Server.RateLimitRPS
	if rps <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	burst := cfg.Server.RateLimitBurst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"message": "too many requests"},
			})
			return
		}
		c.Next()
	}
}
