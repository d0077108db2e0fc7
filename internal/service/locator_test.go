package service

import (
	"testing"
	"time"

	"github.com/cooperativa/facturabot/internal/api/dto"
	"github.com/cooperativa/facturabot/internal/domain/document"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/testutil"
	"github.com/cooperativa/facturabot/internal/types"
	"github.com/stretchr/testify/suite"
)

type LocatorServiceSuite struct {
	testutil.BaseServiceTestSuite
	locator    LocatorService
	docStore   *testutil.InMemoryDocumentStore
	convention *document.FolderConvention
}

func TestLocatorService(t *testing.T) {
	suite.Run(t, new(LocatorServiceSuite))
}

func (s *LocatorServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.docStore = stores.DocumentStore
	s.convention = document.NewFolderConvention(s.GetConfig().Folders)

	s.locator = NewLocatorService(ServiceParams{
		Logger:     s.GetLogger(),
		Config:     s.GetConfig(),
		Convention: s.convention,
		DocRepo:    stores.DocumentStore,
		LedgerRepo: stores.LedgerStore,
	})
}

func (s *LocatorServiceSuite) folderName(p types.BillingPeriod, t types.DocumentType) string {
	return s.convention.FolderName(p, t)
}

func (s *LocatorServiceSuite) TestPinnedSearchDoesNotFallBack() {
	pinned := types.BillingPeriod{Month: time.August, Year: 2025}

	// Folders exist for the pinned period and the one before it; only
	// the earlier one contains the account. A pinned search must not
	// find it.
	s.docStore.AddFolder(s.folderName(pinned, types.DocumentTypeServicios))
	s.docStore.AddFolder(s.folderName(pinned, types.DocumentTypeElectricidad))
	prev := pinned.Previous()
	s.docStore.AddDocument(s.folderName(prev, types.DocumentTypeServicios), "0063700097-09.pdf", []byte("pdf"))

	_, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "6370",
		Period:        &pinned,
	})

	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// Exactly the pinned period's folders were probed, nothing else
	s.Equal([]string{
		s.folderName(pinned, types.DocumentTypeServicios),
		s.folderName(pinned, types.DocumentTypeElectricidad),
	}, s.docStore.LookupCalls)
}

func (s *LocatorServiceSuite) TestUnpinnedSearchFallsBackToPriorMonths() {
	current := types.CurrentBillingPeriod(time.Now())
	twoBack := current.Previous().Previous()

	s.docStore.AddDocument(s.folderName(twoBack, types.DocumentTypeServicios), "0063700097-09.pdf", []byte("pdf"))

	match, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "6370",
	})

	s.NoError(err)
	s.Equal(twoBack, match.Period)
	s.Equal(types.DocumentTypeServicios, match.Type)
	s.Equal("0063700097-09.pdf", match.Document.Name)
}

func (s *LocatorServiceSuite) TestFallbackPrefersNearerMonth() {
	current := types.CurrentBillingPeriod(time.Now())
	oneBack := current.Previous()
	threeBack := oneBack.Previous().Previous()

	s.docStore.AddDocument(s.folderName(threeBack, types.DocumentTypeServicios), "0063700011.pdf", []byte("old"))
	s.docStore.AddDocument(s.folderName(oneBack, types.DocumentTypeServicios), "0063700012.pdf", []byte("new"))

	match, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "6370",
	})

	s.NoError(err)
	s.Equal(oneBack, match.Period)
	s.Equal("0063700012.pdf", match.Document.Name)
}

func (s *LocatorServiceSuite) TestFallbackExhausted() {
	_, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "6370",
	})

	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// Current month plus three fallback months, two folders each
	s.Len(s.docStore.LookupCalls, 8)
}

func (s *LocatorServiceSuite) TestServiciosSearchedBeforeElectricidad() {
	period := types.BillingPeriod{Month: time.August, Year: 2025}

	// Same account present in both folders; Servicios wins
	s.docStore.AddDocument(s.folderName(period, types.DocumentTypeServicios), "a5368001.pdf", []byte("s"))
	s.docStore.AddDocument(s.folderName(period, types.DocumentTypeElectricidad), "b5368001.pdf", []byte("e"))

	match, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "5368",
		Period:        &period,
	})

	s.NoError(err)
	s.Equal(types.DocumentTypeServicios, match.Type)
	s.Equal("a5368001.pdf", match.Document.Name)
}

func (s *LocatorServiceSuite) TestTypeRestrictionProbesOneFolder() {
	period := types.BillingPeriod{Month: time.August, Year: 2025}
	s.docStore.AddDocument(s.folderName(period, types.DocumentTypeElectricidad), "b5368001.pdf", []byte("e"))

	match, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "5368",
		Period:        &period,
		Type:          types.DocumentTypeElectricidad,
	})

	s.NoError(err)
	s.Equal(types.DocumentTypeElectricidad, match.Type)
	s.Equal([]string{
		s.folderName(period, types.DocumentTypeElectricidad),
	}, s.docStore.LookupCalls)
}

func (s *LocatorServiceSuite) TestUndecodableFilenamesAreSkipped() {
	period := types.BillingPeriod{Month: time.August, Year: 2025}
	folder := s.folderName(period, types.DocumentTypeServicios)

	s.docStore.AddDocument(folder, "README.pdf", []byte("junk"))
	s.docStore.AddDocument(folder, "x1.pdf", []byte("short"))
	s.docStore.AddDocument(folder, "0063700097-09.pdf", []byte("pdf"))

	match, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "6370",
		Period:        &period,
	})

	s.NoError(err)
	s.Equal("0063700097-09.pdf", match.Document.Name)
}

func (s *LocatorServiceSuite) TestPreCutoverSharedFolder() {
	// Before the type split both categories live in one folder
	period := types.BillingPeriod{Month: time.June, Year: 2022}
	s.docStore.AddDocument("facturas-junio-2022", "0063700042.pdf", []byte("pdf"))

	match, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "6370",
		Period:        &period,
	})

	s.NoError(err)
	s.Equal(types.DocumentTypeServicios, match.Type)
	s.Equal([]string{"facturas-junio-2022"}, s.docStore.LookupCalls)
}

func (s *LocatorServiceSuite) TestTransportErrorIsNotNotFound() {
	s.docStore.FailWith = ierr.NewError("connection refused").
		WithHint("failed to look up invoice folder").
		Mark(ierr.ErrHTTPClient)

	_, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
		AccountNumber: "6370",
	})

	s.Error(err)
	s.True(ierr.IsHTTPClient(err))
	s.False(ierr.IsNotFound(err))
}

func (s *LocatorServiceSuite) TestInvalidAccountNumberRejected() {
	testCases := []string{"", "12", "1234567", "0123", "12a4"}

	for _, account := range testCases {
		_, err := s.locator.FindDocument(s.GetContext(), &dto.FindDocumentRequest{
			AccountNumber: account,
		})
		s.Error(err, "account %q", account)
		s.True(ierr.IsValidation(err), "account %q", account)
	}

	// No storage calls for invalid input
	s.Empty(s.docStore.LookupCalls)
}
