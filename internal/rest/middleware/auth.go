package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/cooperativa/facturabot/internal/config"
	"github.com/gin-gonic/gin"
)

const headerWebhookSecret = "X-Webhook-Secret"

// WebhookAuthMiddleware checks the shared secret the messaging gateway
// attaches to webhook calls. An empty configured secret disables the
// check (local development).
func WebhookAuthMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := cfg.Server.WebhookSecret
		if secret == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(headerWebhookSecret)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"message": "invalid webhook secret"},
			})
			return
		}

		c.Next()
	}
}
