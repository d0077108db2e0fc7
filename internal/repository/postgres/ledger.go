package postgres

import (
	"context"
	"time"

	"github.com/cooperativa/facturabot/internal/domain/ledger"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/logger"
	"github.com/cooperativa/facturabot/internal/postgres"
)

const insertInvoiceRequest = `
INSERT INTO invoice_requests (id, recipient, account_number, file_name, period_month, period_year, requested_at)
VALUES (:id, :recipient, :account_number, :file_name, :period_month, :period_year, :requested_at)`

const countInvoiceRequests = `
SELECT COUNT(*) FROM invoice_requests
WHERE recipient = $1
  AND requested_at >= $2
  AND requested_at < $3`

type ledgerRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewLedgerRepository returns a ledger.Repository backed by the
// invoice_requests table.
func NewLedgerRepository(client postgres.IClient, log *logger.Logger) ledger.Repository {
	return &ledgerRepository{client: client, logger: log}
}

func (r *ledgerRepository) Create(ctx context.Context, req *ledger.InvoiceRequest) error {
	if _, err := r.client.DB().NamedExecContext(ctx, insertInvoiceRequest, req); err != nil {
		return ierr.WithError(err).
			WithHint("failed to record invoice request").
			WithMessagef("recipient:%s, account:%s", req.Recipient, req.AccountNumber).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// monthBoundsUTC returns the half-open UTC interval covering one
// calendar month. Comparing against the interval keeps the count
// correct regardless of the database session time zone.
func monthBoundsUTC(month time.Month, year int) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (r *ledgerRepository) CountForRecipientInMonth(ctx context.Context, recipient string, month time.Month, year int) (int, error) {
	start, end := monthBoundsUTC(month, year)

	var count int
	err := r.client.DB().GetContext(ctx, &count, countInvoiceRequests, recipient, start, end)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("failed to count invoice requests").
			WithMessagef("recipient:%s", recipient).
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}
