package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/cooperativa/facturabot/internal/domain/ledger"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/samber/lo"
)

// InMemoryLedgerStore implements ledger.Repository in memory.
type InMemoryLedgerStore struct {
	mu      sync.RWMutex
	records []*ledger.InvoiceRequest

	// FailCreate, when set, makes Create fail with a database error.
	FailCreate bool
	// FailCount, when set, makes CountForRecipientInMonth fail.
	FailCount bool
}

// NewInMemoryLedgerStore creates an empty ledger store.
func NewInMemoryLedgerStore() *InMemoryLedgerStore {
	return &InMemoryLedgerStore{}
}

func (s *InMemoryLedgerStore) Create(ctx context.Context, req *ledger.InvoiceRequest) error {
	if s.FailCreate {
		return ierr.NewError("ledger insert failed").Mark(ierr.ErrDatabase)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *req
	s.records = append(s.records, &clone)
	return nil
}

func (s *InMemoryLedgerStore) CountForRecipientInMonth(ctx context.Context, recipient string, month time.Month, year int) (int, error) {
	if s.FailCount {
		return 0, ierr.NewError("ledger count failed").Mark(ierr.ErrDatabase)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := lo.CountBy(s.records, func(rec *ledger.InvoiceRequest) bool {
		return rec.Recipient == recipient &&
			rec.RequestedAt.Month() == month &&
			rec.RequestedAt.Year() == year
	})
	return count, nil
}

// Records returns a snapshot of everything recorded so far.
func (s *InMemoryLedgerStore) Records() []*ledger.InvoiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*ledger.InvoiceRequest, len(s.records))
	copy(out, s.records)
	return out
}
