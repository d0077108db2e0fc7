package intent

import (
	"strconv"

	"github.com/cooperativa/facturabot/internal/types"
)

// Extract reads an invoice request out of free text. Each field is
// resolved independently by its ordered pattern table; a field with no
// match is simply left unset. This is permissive extraction over chat
// messages, not strict parsing.
func Extract(text string) Intent {
	var out Intent

	if raw, ok := firstCapture(text, accountNumberPatterns); ok {
		out.AccountNumber = canonicalAccountNumber(raw)
	}

	for _, entry := range documentTypePatterns {
		if entry.re.MatchString(text) {
			out.Type = entry.docType
			break
		}
	}

	if m := monthPattern.FindStringSubmatch(text); m != nil {
		if month, ok := types.ParseSpanishMonth(m[1]); ok {
			out.Month = month
		}
	}

	if m := yearPattern.FindStringSubmatch(text); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			out.Year = year
		}
	}

	return out
}

// IsNewServiceRequest reports whether a message asks for a new
// connection or installation. It must run before invoice extraction:
// routing "quiero internet" into the document search wastes a full
// folder walk that can never match.
func IsNewServiceRequest(text string) bool {
	for _, re := range newServicePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// MentionsInvoice reports whether the message talks about a bill.
func MentionsInvoice(text string) bool {
	return invoicePattern.MatchString(text)
}

// canonicalAccountNumber drops leading zeros so extracted numbers
// compare equal to decoded filename segments.
func canonicalAccountNumber(raw string) string {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	return strconv.Itoa(n)
}
