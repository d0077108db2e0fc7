package intent

import (
	"regexp"

	"github.com/cooperativa/facturabot/internal/types"
)

// The extraction tables below are ordered: the first pattern that
// matches a field wins and later patterns are not consulted. Keeping
// them as data rather than a conditional chain keeps the priority
// visible and testable on its own.

// accountNumberPatterns recover a keyword-adjacent account number.
// Keyword-adjacent digits are higher confidence than a bare token, so
// they are listed first; the bare token is the last resort and can
// misfire on phone numbers or dates in the message.
var accountNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcuenta\b\D{0,15}?(\d{3,6})\b`),
	regexp.MustCompile(`(?i)\bfactura\b\D{0,15}?(\d{3,6})\b`),
	regexp.MustCompile(`(?i)\b(\d{3,6})\b\D{0,15}?\bfactura\b`),
	regexp.MustCompile(`(?i)\bn[uú]mero\b\D{0,15}?(\d{3,6})\b`),
	regexp.MustCompile(`\b(\d{3,6})\b`),
}

// documentTypePatterns map category keywords to a document type.
// Ordered: the Servicios keyword set is consulted before the
// Electricidad one.
var documentTypePatterns = []struct {
	re      *regexp.Regexp
	docType types.DocumentType
}{
	{regexp.MustCompile(`(?i)\b(servicios?|internet|cable|tv)\b`), types.DocumentTypeServicios},
	{regexp.MustCompile(`(?i)\b(electricidad|luz|energ[ií]a)\b`), types.DocumentTypeElectricidad},
}

// invoicePattern decides whether a message is about billing at all.
// Messages that neither mention an invoice nor carry an account number
// are handed to the general assistant instead of the locator.
var invoicePattern = regexp.MustCompile(`(?i)\b(facturas?|recibos?|boletas?)\b`)

var monthPattern = regexp.MustCompile(`(?i)\b(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\b`)

var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// newServicePatterns classify a message as a new-connection request
// rather than a billing lookup. "quiero internet" asks for an
// installation while "quiero mi factura de internet" asks for a bill;
// the patterns only fire when the service word follows the verb
// directly or through an article.
var newServicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(quiero|quisiera|necesito|deseo|solicito)\s+(poner|instalar|contratar|tener)\b`),
	regexp.MustCompile(`(?i)\b(quiero|quisiera|necesito|deseo|solicito)\s+(el\s+|la\s+|un\s+|una\s+)?(servicio|internet|cable|tv|luz|electricidad|energ[ií]a)\b`),
	regexp.MustCompile(`(?i)\bnuev[oa]\s+(conexi[oó]n|servicio|instalaci[oó]n)\b`),
	regexp.MustCompile(`(?i)\b(instalaci[oó]n|alta)\s+de\s+(servicio|internet|cable|tv|luz|electricidad)\b`),
	regexp.MustCompile(`(?i)\bcontratar\b`),
}

// firstCapture runs ordered patterns and returns the first capture
// group of the first pattern that matches.
func firstCapture(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			for _, group := range m[1:] {
				if group != "" {
					return group, true
				}
			}
			return m[0], true
		}
	}
	return "", false
}
