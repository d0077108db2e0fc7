package document

import (
	"github.com/cooperativa/facturabot/internal/types"
)

// Folder is an opaque handle to a named container in the blob
// hierarchy. Handles are resolved by exact-name lookup per search and
// never cached; the hierarchy is owned by an external party and can
// change between requests.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is an opaque handle to a stored billing PDF. ID is whatever
// the blob provider needs to fetch the bytes; Name is the provider-side
// filename carrying the account number encoding.
type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is a located billing document tagged with the category and
// period it was found under.
type Match struct {
	Document Document            `json:"document"`
	Type     types.DocumentType  `json:"type"`
	Period   types.BillingPeriod `json:"period"`
}
