package main

import (
	"context"
	"net/http"
	"time"

	"github.com/cooperativa/facturabot/internal/api"
	v1 "github.com/cooperativa/facturabot/internal/api/v1"
	"github.com/cooperativa/facturabot/internal/completion"
	"github.com/cooperativa/facturabot/internal/config"
	"github.com/cooperativa/facturabot/internal/httpclient"
	"github.com/cooperativa/facturabot/internal/idempotency"
	"github.com/cooperativa/facturabot/internal/logger"
	"github.com/cooperativa/facturabot/internal/messaging"
	"github.com/cooperativa/facturabot/internal/postgres"
	"github.com/cooperativa/facturabot/internal/pyroscope"
	"github.com/cooperativa/facturabot/internal/repository"
	"github.com/cooperativa/facturabot/internal/sentry"
	"github.com/cooperativa/facturabot/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewClient,

			// HTTP Client
			httpclient.NewDefaultClient,

			// Idempotency
			idempotency.NewChecker,

			// Repositories
			repository.NewDocumentRepository,
			repository.NewLedgerRepository,

			// External capabilities
			completion.NewClient,
			messaging.NewWhatsAppPusher,
		),
	)

	// Monitoring
	opts = append(opts, sentry.Module())
	opts = append(opts, pyroscope.Module())

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewLocatorService,
			service.NewChatService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			v1.NewHealthHandler,
			v1.NewChatHandler,
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(health *v1.HealthHandler, chat *v1.ChatHandler) api.Handlers {
	return api.Handlers{
		Health: health,
		Chat:   chat,
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration) *gin.Engine {
	return api.NewRouter(handlers, cfg)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	db postgres.IClient,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			return db.Close()
		},
	})
}
