package ledger

import (
	"context"
	"time"
)

// Repository persists invoice request records. The ledger is
// best-effort telemetry: callers log and swallow Create failures rather
// than letting them affect the delivery that triggered the write.
type Repository interface {
	// Create appends an immutable record.
	Create(ctx context.Context, req *InvoiceRequest) error

	// CountForRecipientInMonth counts records for a recipient whose
	// requested_at falls within the given calendar month.
	CountForRecipientInMonth(ctx context.Context, recipient string, month time.Month, year int) (int, error)
}
