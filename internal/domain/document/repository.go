package document

import (
	"context"
)

// Repository is the read side of the blob hierarchy holding billing
// documents. Implementations translate connectivity, auth and quota
// failures into errors marked as transport errors, and absent folders
// into errors marked not-found; the search engine treats the two very
// differently.
type Repository interface {
	// FindFolderByName resolves a folder by exact name. Returns an
	// error marked ErrNotFound when no folder with that name exists.
	FindFolderByName(ctx context.Context, name string) (*Folder, error)

	// ListDocuments lists the PDF documents inside a folder.
	ListDocuments(ctx context.Context, folder *Folder) ([]Document, error)

	// Download fetches the raw bytes of a document.
	Download(ctx context.Context, doc Document) ([]byte, error)
}
