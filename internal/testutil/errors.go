package testutil

import (
	ierr "github.com/cooperativa/facturabot/internal/errors"
)

// TransportError builds an error marked the way repositories mark
// connectivity failures.
func TransportError(msg string) error {
	return ierr.NewError(msg).Mark(ierr.ErrHTTPClient)
}
