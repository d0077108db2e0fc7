package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpanishMonth(t *testing.T) {
	p := BillingPeriod{Month: time.September, Year: 2025}
	assert.Equal(t, "septiembre", p.SpanishMonth())
	assert.Equal(t, "septiembre-2025", p.String())
}

func TestPrevious(t *testing.T) {
	p := BillingPeriod{Month: time.March, Year: 2025}
	assert.Equal(t, BillingPeriod{Month: time.February, Year: 2025}, p.Previous())

	// Year boundary
	jan := BillingPeriod{Month: time.January, Year: 2025}
	assert.Equal(t, BillingPeriod{Month: time.December, Year: 2024}, jan.Previous())
}

func TestBefore(t *testing.T) {
	a := BillingPeriod{Month: time.December, Year: 2022}
	b := BillingPeriod{Month: time.January, Year: 2023}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestParseSpanishMonth(t *testing.T) {
	month, ok := ParseSpanishMonth("Septiembre")
	assert.True(t, ok)
	assert.Equal(t, time.September, month)

	month, ok = ParseSpanishMonth("  enero ")
	assert.True(t, ok)
	assert.Equal(t, time.January, month)

	_, ok = ParseSpanishMonth("september")
	assert.False(t, ok)
}

func TestNewBillingPeriod(t *testing.T) {
	p, err := NewBillingPeriod(9, 2025)
	assert.NoError(t, err)
	assert.Equal(t, time.September, p.Month)

	_, err = NewBillingPeriod(13, 2025)
	assert.Error(t, err)

	_, err = NewBillingPeriod(9, 1999)
	assert.Error(t, err)
}
