package service

import (
	"context"
	"time"

	"github.com/cooperativa/facturabot/internal/api/dto"
	"github.com/cooperativa/facturabot/internal/domain/document"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/types"
)

// fallbackMonths is how many prior months an unpinned search walks
// before giving up.
const fallbackMonths = 3

// LocatorService finds the stored billing document matching an account
// number and an optional billing period.
type LocatorService interface {
	FindDocument(ctx context.Context, req *dto.FindDocumentRequest) (*document.Match, error)
}

type locatorService struct {
	ServiceParams
}

func NewLocatorService(params ServiceParams) LocatorService {
	return &locatorService{ServiceParams: params}
}

// FindDocument resolves candidate folders for the target period,
// scans their filenames for the account number, and, only when the
// caller left the period unpinned, walks backward through the three
// prior months. A caller who asked for August's invoice must never
// silently receive July's.
func (s *locatorService) FindDocument(ctx context.Context, req *dto.FindDocumentRequest) (*document.Match, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pinned := req.Period != nil

	target := types.CurrentBillingPeriod(time.Now())
	if pinned {
		target = *req.Period
	}

	periods := []types.BillingPeriod{target}
	if !pinned {
		prev := target
		for i := 0; i < fallbackMonths; i++ {
			prev = prev.Previous()
			periods = append(periods, prev)
		}
	}

	for _, period := range periods {
		match, err := s.searchPeriod(ctx, period, req)
		if err != nil {
			if ierr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		return match, nil
	}

	s.Logger.Infow("invoice search exhausted",
		"recipient", types.GetRecipientID(ctx),
		"account", req.AccountNumber,
		"periods_probed", len(periods))

	return nil, ierr.NewError("no matching invoice").
		WithHint("No invoice was found for this account and period").
		WithReportableDetails(map[string]any{
			"account_number": req.AccountNumber,
			"pinned":         pinned,
		}).
		Mark(ierr.ErrNotFound)
}

// searchPeriod probes one period's candidate folders in order and
// returns the first document whose decoded account number matches.
func (s *locatorService) searchPeriod(ctx context.Context, period types.BillingPeriod, req *dto.FindDocumentRequest) (*document.Match, error) {
	for _, candidate := range s.Convention.Candidates(period, req.Type) {
		folder, err := s.DocRepo.FindFolderByName(ctx, candidate.Name)
		if err != nil {
			if ierr.IsNotFound(err) {
				// Absent folders are common: not every period has
				// uploads yet
				continue
			}
			return nil, err
		}

		docs, err := s.DocRepo.ListDocuments(ctx, folder)
		if err != nil {
			return nil, err
		}

		for _, doc := range docs {
			account, ok := document.DecodeAccountNumber(doc.Name)
			if !ok {
				// Non-conforming filename: skip it and keep scanning
				s.Logger.Debugw("skipping undecodable filename",
					"folder", candidate.Name, "file", doc.Name)
				continue
			}
			if account == req.AccountNumber {
				return &document.Match{
					Document: doc,
					Type:     candidate.Type,
					Period:   period,
				}, nil
			}
		}
	}

	return nil, ierr.NewErrorf("no match in period %s", period).
		Mark(ierr.ErrNotFound)
}
