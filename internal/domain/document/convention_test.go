package document

import (
	"testing"
	"time"

	"github.com/cooperativa/facturabot/internal/config"
	"github.com/cooperativa/facturabot/internal/types"
	"github.com/stretchr/testify/assert"
)

func newTestConvention() *FolderConvention {
	return NewFolderConvention(config.FoldersConfig{
		CutoverMonth:       1,
		CutoverYear:        2023,
		SharedNameTemplate: "facturas-{month}-{year}",
	})
}

func TestFolderName(t *testing.T) {
	conv := newTestConvention()

	post := types.BillingPeriod{Month: time.September, Year: 2025}
	assert.Equal(t, "servicios-septiembre-2025", conv.FolderName(post, types.DocumentTypeServicios))
	assert.Equal(t, "electricidad-septiembre-2025", conv.FolderName(post, types.DocumentTypeElectricidad))

	// Pre-cutover periods collapse to the shared folder for both types
	pre := types.BillingPeriod{Month: time.December, Year: 2022}
	assert.Equal(t, "facturas-diciembre-2022", conv.FolderName(pre, types.DocumentTypeServicios))
	assert.Equal(t, "facturas-diciembre-2022", conv.FolderName(pre, types.DocumentTypeElectricidad))
}

func TestCandidatesOrder(t *testing.T) {
	conv := newTestConvention()
	period := types.BillingPeriod{Month: time.March, Year: 2024}

	candidates := conv.Candidates(period, "")
	assert.Len(t, candidates, 2)
	assert.Equal(t, "servicios-marzo-2024", candidates[0].Name)
	assert.Equal(t, types.DocumentTypeServicios, candidates[0].Type)
	assert.Equal(t, "electricidad-marzo-2024", candidates[1].Name)
	assert.Equal(t, types.DocumentTypeElectricidad, candidates[1].Type)
}

func TestCandidatesWithRequestedType(t *testing.T) {
	conv := newTestConvention()
	period := types.BillingPeriod{Month: time.March, Year: 2024}

	candidates := conv.Candidates(period, types.DocumentTypeElectricidad)
	assert.Len(t, candidates, 1)
	assert.Equal(t, "electricidad-marzo-2024", candidates[0].Name)
}

func TestCandidatesPreCutover(t *testing.T) {
	conv := newTestConvention()
	period := types.BillingPeriod{Month: time.June, Year: 2022}

	// A single shared folder regardless of requested type
	candidates := conv.Candidates(period, "")
	assert.Len(t, candidates, 1)
	assert.Equal(t, "facturas-junio-2022", candidates[0].Name)
	assert.True(t, candidates[0].Shared)
	assert.Equal(t, types.DocumentTypeServicios, candidates[0].Type)

	candidates = conv.Candidates(period, types.DocumentTypeElectricidad)
	assert.Len(t, candidates, 1)
	assert.Equal(t, "facturas-junio-2022", candidates[0].Name)
	assert.Equal(t, types.DocumentTypeElectricidad, candidates[0].Type)
}

func TestCutoverMonthUsesSplitNaming(t *testing.T) {
	conv := newTestConvention()
	cutover := types.BillingPeriod{Month: time.January, Year: 2023}

	assert.Equal(t, "servicios-enero-2023", conv.FolderName(cutover, types.DocumentTypeServicios))
}
