package types

import (
	ierr "github.com/cooperativa/facturabot/internal/errors"
)

// DocumentType is the invoice category a billing document belongs to.
// The cooperative bills electric service separately from the rest of
// its utilities (internet, cable, tv), and stores each category in its
// own folder from the split cutover onwards.
type DocumentType string

const (
	DocumentTypeServicios    DocumentType = "servicios"
	DocumentTypeElectricidad DocumentType = "electricidad"
)

// AllDocumentTypes lists the types in search order. Servicios is always
// probed before Electricidad.
var AllDocumentTypes = []DocumentType{
	DocumentTypeServicios,
	DocumentTypeElectricidad,
}

func (t DocumentType) String() string {
	return string(t)
}

func (t DocumentType) Validate() error {
	switch t {
	case DocumentTypeServicios, DocumentTypeElectricidad:
		return nil
	default:
		return ierr.NewError("invalid document type").
			WithHintf("invalid document type: %s", t).
			Mark(ierr.ErrValidation)
	}
}
