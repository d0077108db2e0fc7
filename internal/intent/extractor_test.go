package intent

import (
	"testing"
	"time"

	"github.com/cooperativa/facturabot/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected Intent
	}{
		{
			name: "account_after_cuenta_keyword",
			text: "Necesito mi factura de septiembre, cuenta 7226",
			expected: Intent{
				AccountNumber: "7226",
				Month:         time.September,
			},
		},
		{
			name: "electricity_by_keyword",
			text: "Factura de septiembre de energía eléctrica, cuenta 5368",
			expected: Intent{
				AccountNumber: "5368",
				Month:         time.September,
				Type:          types.DocumentTypeElectricidad,
			},
		},
		{
			name: "account_with_filler_words",
			text: "Quiero mi factura, mi número de cuenta es 6370",
			expected: Intent{
				AccountNumber: "6370",
			},
		},
		{
			name: "bare_token_fallback",
			text: "6370 por favor",
			expected: Intent{
				AccountNumber: "6370",
			},
		},
		{
			name: "leading_zeros_are_canonicalized",
			text: "cuenta 0239",
			expected: Intent{
				AccountNumber: "239",
			},
		},
		{
			name: "internet_maps_to_servicios",
			text: "Quiero mi factura de internet, cuenta 815",
			expected: Intent{
				AccountNumber: "815",
				Type:          types.DocumentTypeServicios,
			},
		},
		{
			name: "luz_maps_to_electricidad",
			text: "cuánto debo de la luz? cuenta 555",
			expected: Intent{
				AccountNumber: "555",
				Type:          types.DocumentTypeElectricidad,
			},
		},
		{
			name: "explicit_year",
			text: "factura de enero de la cuenta 7226 del 2024",
			expected: Intent{
				AccountNumber: "7226",
				Month:         time.January,
				Year:          2024,
			},
		},
		{
			name:     "nothing_to_extract",
			text:     "hola, buen día",
			expected: Intent{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Extract(tc.text))
		})
	}
}

func TestExtractPinned(t *testing.T) {
	assert.True(t, Extract("factura de agosto, cuenta 123").Pinned())
	assert.True(t, Extract("cuenta 123 del 2024").Pinned())
	assert.False(t, Extract("mi factura, cuenta 123").Pinned())
}

func TestIsNewServiceRequest(t *testing.T) {
	testCases := []struct {
		text     string
		expected bool
	}{
		{"Quiero internet en mi casa", true},
		{"Quiero mi factura de internet", false},
		{"Necesito poner luz en el galpón", true},
		{"quisiera contratar el servicio de cable", true},
		{"Nueva conexión de agua", true},
		{"Necesito mi factura de septiembre, cuenta 7226", false},
		{"hola, buen día", false},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNewServiceRequest(tc.text))
		})
	}
}

func TestMentionsInvoice(t *testing.T) {
	assert.True(t, MentionsInvoice("quiero mi factura"))
	assert.True(t, MentionsInvoice("me pasás el recibo?"))
	assert.False(t, MentionsInvoice("hola, a qué hora abren?"))
}
