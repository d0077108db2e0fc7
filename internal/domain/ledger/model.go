package ledger

import (
	"time"

	"github.com/cooperativa/facturabot/internal/types"
)

// InvoiceRequest is one successful invoice lookup. Records are
// append-only telemetry: they are never mutated or deleted, and they
// feed the per-recipient monthly count used as a throttling signal.
type InvoiceRequest struct {
	ID            string    `db:"id" json:"id"`
	Recipient     string    `db:"recipient" json:"recipient"`
	AccountNumber string    `db:"account_number" json:"account_number"`
	FileName      string    `db:"file_name" json:"file_name"`
	PeriodMonth   int       `db:"period_month" json:"period_month"`
	PeriodYear    int       `db:"period_year" json:"period_year"`
	RequestedAt   time.Time `db:"requested_at" json:"requested_at"`
}

// NewInvoiceRequest builds a record for a delivered lookup with a
// server-assigned timestamp.
func NewInvoiceRequest(recipient, accountNumber, fileName string, period types.BillingPeriod) *InvoiceRequest {
	return &InvoiceRequest{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_REQUEST),
		Recipient:     recipient,
		AccountNumber: accountNumber,
		FileName:      fileName,
		PeriodMonth:   int(period.Month),
		PeriodYear:    period.Year,
		RequestedAt:   time.Now().UTC(),
	}
}
