package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cooperativa/facturabot/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(cfg *config.Configuration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(cfg))
	router.POST("/messages", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimitSheds(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Server.RateLimitRPS = 1
	cfg.Server.RateLimitBurst = 2
	router := newRateLimitedRouter(cfg)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/messages", nil)
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	// Burst of two passes, the third is shed
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	router := newRateLimitedRouter(config.GetDefaultConfig())

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/messages", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
