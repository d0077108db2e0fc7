package postgres

import (
	"context"

	"github.com/cooperativa/facturabot/internal/config"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// IClient is the narrow database surface repositories depend on.
type IClient interface {
	DB() *sqlx.DB
	Close() error
}

type client struct {
	db     *sqlx.DB
	logger *logger.Logger
}

// NewClient opens and verifies a Postgres connection pool.
func NewClient(cfg *config.Configuration, log *logger.Logger) (IClient, error) {
	db, err := sqlx.Open("postgres", cfg.Postgres.GetDSN())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to open postgres connection").
			Mark(ierr.ErrDatabase)
	}

	if err := db.PingContext(context.Background()); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to ping postgres").
			Mark(ierr.ErrDatabase)
	}

	log.Infow("connected to postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.DBName)

	return &client{db: db, logger: log}, nil
}

func (c *client) DB() *sqlx.DB {
	return c.db
}

func (c *client) Close() error {
	return c.db.Close()
}
