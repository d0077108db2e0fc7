package service

import (
	"github.com/cooperativa/facturabot/internal/completion"
	"github.com/cooperativa/facturabot/internal/config"
	"github.com/cooperativa/facturabot/internal/domain/document"
	"github.com/cooperativa/facturabot/internal/domain/ledger"
	"github.com/cooperativa/facturabot/internal/logger"
	"github.com/cooperativa/facturabot/internal/messaging"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger     *logger.Logger
	Config     *config.Configuration
	Convention *document.FolderConvention

	// Repositories
	DocRepo    document.Repository
	LedgerRepo ledger.Repository

	// External capabilities
	Completion completion.Client
	Pusher     messaging.Pusher
}

// NewServiceParams assembles the parameter struct for fx.
func NewServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	docRepo document.Repository,
	ledgerRepo ledger.Repository,
	completionClient completion.Client,
	pusher messaging.Pusher,
) ServiceParams {
	return ServiceParams{
		Logger:     log,
		Config:     cfg,
		Convention: document.NewFolderConvention(cfg.Folders),
		DocRepo:    docRepo,
		LedgerRepo: ledgerRepo,
		Completion: completionClient,
		Pusher:     pusher,
	}
}
