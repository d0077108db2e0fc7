package dto

import (
	"regexp"

	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/types"
)

var accountNumberFormat = regexp.MustCompile(`^[1-9]\d{2,5}$`)

// FindDocumentRequest asks the locator for one account's invoice.
// Period nil means "default to the current month and fall back through
// prior months"; a non-nil period pins the search to exactly that
// month. Type empty means both categories are searched.
type FindDocumentRequest struct {
	AccountNumber string               `json:"account_number"`
	Period        *types.BillingPeriod `json:"period,omitempty"`
	Type          types.DocumentType   `json:"type,omitempty"`
}

func (r *FindDocumentRequest) Validate() error {
	if !accountNumberFormat.MatchString(r.AccountNumber) {
		return ierr.NewError("invalid account number").
			WithHint("Account number must be 3 to 6 digits without leading zeros").
			WithReportableDetails(map[string]any{
				"account_number": r.AccountNumber,
			}).
			Mark(ierr.ErrValidation)
	}
	if r.Period != nil {
		if err := r.Period.Validate(); err != nil {
			return err
		}
	}
	if r.Type != "" {
		if err := r.Type.Validate(); err != nil {
			return err
		}
	}
	return nil
}
