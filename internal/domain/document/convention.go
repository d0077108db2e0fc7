package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cooperativa/facturabot/internal/config"
	"github.com/cooperativa/facturabot/internal/types"
	"github.com/samber/lo"
)

// FolderCandidate is a folder the search engine should probe for a
// given period, together with the category a match found inside it
// should be tagged with.
type FolderCandidate struct {
	Name string
	Type types.DocumentType
	// Shared marks a pre-cutover folder holding both categories
	Shared bool
}

// FolderConvention computes folder names for billing periods. From the
// type-split cutover onwards each category has its own folder named
// {type}-{month}-{year}; earlier periods share one folder whose name
// comes from a configured template.
type FolderConvention struct {
	cutover        types.BillingPeriod
	sharedTemplate string
}

func NewFolderConvention(cfg config.FoldersConfig) *FolderConvention {
	return &FolderConvention{
		cutover: types.BillingPeriod{
			Month: time.Month(cfg.CutoverMonth),
			Year:  cfg.CutoverYear,
		},
		sharedTemplate: cfg.SharedNameTemplate,
	}
}

// FolderName returns the folder holding documents of the given type for
// the given period.
func (c *FolderConvention) FolderName(period types.BillingPeriod, docType types.DocumentType) string {
	if period.Before(c.cutover) {
		return c.sharedFolderName(period)
	}
	return fmt.Sprintf("%s-%s-%d", docType, period.SpanishMonth(), period.Year)
}

func (c *FolderConvention) sharedFolderName(period types.BillingPeriod) string {
	name := strings.ReplaceAll(c.sharedTemplate, "{month}", period.SpanishMonth())
	return strings.ReplaceAll(name, "{year}", strconv.Itoa(period.Year))
}

// Candidates returns the folders to probe for a period, in search
// order. When requested is empty both categories are probed, Servicios
// first. Pre-cutover periods collapse to the single shared folder; a
// match there is tagged with the requested type when one was given,
// otherwise with Servicios.
func (c *FolderConvention) Candidates(period types.BillingPeriod, requested types.DocumentType) []FolderCandidate {
	if period.Before(c.cutover) {
		tag := requested
		if tag == "" {
			tag = types.DocumentTypeServicios
		}
		return []FolderCandidate{{
			Name:   c.sharedFolderName(period),
			Type:   tag,
			Shared: true,
		}}
	}

	if requested != "" {
		return []FolderCandidate{{
			Name: c.FolderName(period, requested),
			Type: requested,
		}}
	}

	return lo.Map(types.AllDocumentTypes, func(docType types.DocumentType, _ int) FolderCandidate {
		return FolderCandidate{
			Name: c.FolderName(period, docType),
			Type: docType,
		}
	})
}
