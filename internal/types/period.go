package types

import (
	"fmt"
	"strings"
	"time"

	ierr "github.com/cooperativa/facturabot/internal/errors"
)

// spanishMonths maps time.Month to the lowercase Spanish month name
// used throughout the folder naming convention.
var spanishMonths = map[time.Month]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// BillingPeriod identifies which month's invoices are being searched.
type BillingPeriod struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
}

// CurrentBillingPeriod returns the period for the given instant.
func CurrentBillingPeriod(now time.Time) BillingPeriod {
	return BillingPeriod{Month: now.Month(), Year: now.Year()}
}

// NewBillingPeriod builds a normalized period from a numeric month and year.
func NewBillingPeriod(month int, year int) (BillingPeriod, error) {
	if month < 1 || month > 12 {
		return BillingPeriod{}, ierr.NewError("invalid month").
			WithHintf("month must be between 1 and 12, got %d", month).
			Mark(ierr.ErrValidation)
	}
	if year < 2000 || year > 2099 {
		return BillingPeriod{}, ierr.NewError("invalid year").
			WithHintf("year must be a 4 digit year starting with 20, got %d", year).
			Mark(ierr.ErrValidation)
	}
	return BillingPeriod{Month: time.Month(month), Year: year}, nil
}

// SpanishMonth returns the lowercase Spanish name of the period's month.
func (p BillingPeriod) SpanishMonth() string {
	return spanishMonths[p.Month]
}

// Previous returns the calendar month immediately before this one.
func (p BillingPeriod) Previous() BillingPeriod {
	if p.Month == time.January {
		return BillingPeriod{Month: time.December, Year: p.Year - 1}
	}
	return BillingPeriod{Month: p.Month - 1, Year: p.Year}
}

// Before reports whether p is strictly earlier than other.
func (p BillingPeriod) Before(other BillingPeriod) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

func (p BillingPeriod) String() string {
	return fmt.Sprintf("%s-%d", p.SpanishMonth(), p.Year)
}

func (p BillingPeriod) Validate() error {
	if p.Month < time.January || p.Month > time.December {
		return ierr.NewError("invalid billing period").
			WithHint("billing period month is out of range").
			Mark(ierr.ErrValidation)
	}
	if p.Year < 2000 || p.Year > 2099 {
		return ierr.NewError("invalid billing period").
			WithHint("billing period year is out of range").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ParseSpanishMonth resolves a Spanish month name, in any casing, to its
// calendar month. Returns false when the name is not a Spanish month.
func ParseSpanishMonth(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for month, spanish := range spanishMonths {
		if spanish == name {
			return month, true
		}
	}
	return 0, false
}
