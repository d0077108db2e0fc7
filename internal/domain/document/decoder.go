package document

import (
	"strconv"
	"strings"
)

// DecodeAccountNumber extracts the account number embedded in a billing
// document filename. The upload convention, which this system does not
// control, is one lead character followed by a 4-digit zero-padded
// account segment and an arbitrary suffix, e.g. "0063700097-09.pdf"
// encodes account 6370.
//
// Returns ok=false for filenames that do not fit the convention (too
// short, or a non-numeric account segment). That is an expected outcome
// while scanning a folder, never an error.
func DecodeAccountNumber(filename string) (string, bool) {
	name := filename
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name = name[:len(name)-len(".pdf")]
	}

	if len(name) < 5 {
		return "", false
	}

	account, err := strconv.Atoi(name[1:5])
	if err != nil {
		return "", false
	}

	// Canonical form drops the zero padding
	return strconv.Itoa(account), true
}
