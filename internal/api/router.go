package api

import (
	v1 "github.com/cooperativa/facturabot/internal/api/v1"
	"github.com/cooperativa/facturabot/internal/config"
	"github.com/cooperativa/facturabot/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health *v1.HealthHandler
	Chat   *v1.ChatHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers, cfg)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, cfg *config.Configuration) {
	// Webhook for inbound chat messages
	chat := router.Group("/chat")
	chat.Use(middleware.RateLimitMiddleware(cfg))
	chat.Use(middleware.WebhookAuthMiddleware(cfg))
	{
		chat.POST("/messages", handlers.Chat.ReceiveMessage)
	}
}
