package testutil

import (
	"context"
	"sync"

	"github.com/cooperativa/facturabot/internal/domain/document"
	ierr "github.com/cooperativa/facturabot/internal/errors"
)

// InMemoryDocumentStore implements document.Repository over a map of
// folder name to documents. It records every folder lookup so tests
// can assert exactly which periods a search probed.
type InMemoryDocumentStore struct {
	mu       sync.RWMutex
	folders  map[string][]document.Document
	contents map[string][]byte

	// LookupCalls records folder names passed to FindFolderByName, in
	// order.
	LookupCalls []string

	// FailWith, when set, makes every call fail with that error.
	FailWith error
}

// NewInMemoryDocumentStore creates an empty store.
func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		folders:  make(map[string][]document.Document),
		contents: make(map[string][]byte),
	}
}

// AddDocument places a document inside a folder, creating the folder.
func (s *InMemoryDocumentStore) AddDocument(folderName, fileName string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := folderName + "/" + fileName
	s.folders[folderName] = append(s.folders[folderName], document.Document{ID: id, Name: fileName})
	s.contents[id] = data
}

// AddFolder creates an empty folder.
func (s *InMemoryDocumentStore) AddFolder(folderName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[folderName]; !ok {
		s.folders[folderName] = nil
	}
}

func (s *InMemoryDocumentStore) FindFolderByName(ctx context.Context, name string) (*document.Folder, error) {
	s.mu.Lock()
	s.LookupCalls = append(s.LookupCalls, name)
	s.mu.Unlock()

	if s.FailWith != nil {
		return nil, s.FailWith
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.folders[name]; !ok {
		return nil, ierr.NewErrorf("folder %q not found", name).
			Mark(ierr.ErrNotFound)
	}
	return &document.Folder{ID: name, Name: name}, nil
}

func (s *InMemoryDocumentStore) ListDocuments(ctx context.Context, folder *document.Folder) ([]document.Document, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]document.Document, len(s.folders[folder.Name]))
	copy(docs, s.folders[folder.Name])
	return docs, nil
}

func (s *InMemoryDocumentStore) Download(ctx context.Context, doc document.Document) ([]byte, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.contents[doc.ID]
	if !ok {
		return nil, ierr.NewErrorf("document %q not found", doc.ID).
			Mark(ierr.ErrNotFound)
	}
	return data, nil
}
