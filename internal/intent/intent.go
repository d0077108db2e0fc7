package intent

import (
	"time"

	"github.com/cooperativa/facturabot/internal/types"
)

// Intent is the structured reading of a free-text invoice request.
// Every field is independently optional; extraction never fails, it
// just leaves unmatched fields unset.
type Intent struct {
	AccountNumber string             `json:"account_number,omitempty"`
	Month         time.Month         `json:"month,omitempty"`
	Year          int                `json:"year,omitempty"`
	Type          types.DocumentType `json:"type,omitempty"`
}

// HasAccountNumber reports whether an account number was recovered.
func (i Intent) HasAccountNumber() bool {
	return i.AccountNumber != ""
}

// HasMonth reports whether the user named a month.
func (i Intent) HasMonth() bool {
	return i.Month >= time.January && i.Month <= time.December
}

// HasYear reports whether the user named a year.
func (i Intent) HasYear() bool {
	return i.Year != 0
}

// Pinned reports whether the user explicitly asked for a period. A
// pinned search must not fall back to other months.
func (i Intent) Pinned() bool {
	return i.HasMonth() || i.HasYear()
}
