package repository

import (
	"github.com/cooperativa/facturabot/internal/config"
	"github.com/cooperativa/facturabot/internal/domain/document"
	"github.com/cooperativa/facturabot/internal/domain/ledger"
	"github.com/cooperativa/facturabot/internal/logger"
	"github.com/cooperativa/facturabot/internal/postgres"
	ledgerRepo "github.com/cooperativa/facturabot/internal/repository/postgres"
	"github.com/cooperativa/facturabot/internal/repository/s3store"
)

// NewDocumentRepository wires the S3-backed blob hierarchy.
func NewDocumentRepository(cfg *config.Configuration, log *logger.Logger) (document.Repository, error) {
	return s3store.NewStore(cfg, log)
}

// NewLedgerRepository wires the Postgres-backed request ledger.
func NewLedgerRepository(client postgres.IClient, log *logger.Logger) ledger.Repository {
	return ledgerRepo.NewLedgerRepository(client, log)
}
