package store

import (
	"context"
	"iter"
	"sync"

	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/services"
)

// MemoryStore keeps pages in insertion order. Writing an existing file
// replaces its pages in place, so scan order stays stable.
type MemoryStore struct {
	Mu    sync.RWMutex
	pages []model.Page
}

var (
	_ services.PageSource = (*MemoryStore)(nil)
	_ services.PageWriter = (*MemoryStore)(nil)
)

// NewMemoryStore creates a MemoryStore holding pages.
func NewMemoryStore(pages ...model.Page) *MemoryStore {
	ms := &MemoryStore{pages: make([]model.Page, len(pages))}
	copy(ms.pages, pages)
	return ms
}

// Pages yields a snapshot of the stored pages.
func (ms *MemoryStore) Pages(ctx context.Context) iter.Seq2[model.Page, error] {
	ms.Mu.RLock()
	snapshot := make([]model.Page, len(ms.pages))
	copy(snapshot, ms.pages)
	ms.Mu.RUnlock()

	return func(yield func(model.Page, error) bool) {
		for _, p := range snapshot {
			if !yield(p, nil) {
				return
			}
		}
	}
}

// WritePages replaces every page of file with pages.
func (ms *MemoryStore) WritePages(ctx context.Context, file string, pages []model.Page) error {
	ms.Mu.Lock()
	defer ms.Mu.Unlock()

	kept := ms.pages[:0:0]
	insertAt := -1
	for _, p := range ms.pages {
		if p.File == file {
			if insertAt == -1 {
				insertAt = len(kept)
			}
			continue
		}
		kept = append(kept, p)
	}

	fresh := make([]model.Page, len(pages))
	for i, p := range pages {
		p.File = file
		fresh[i] = p
	}

	if insertAt == -1 {
		ms.pages = append(kept, fresh...)
		return nil
	}
	ms.pages = append(kept[:insertAt:insertAt], append(fresh, kept[insertAt:]...)...)
	return nil
}

// Len returns the number of stored pages.
func (ms *MemoryStore) Len() int {
	ms.Mu.RLock()
	defer ms.Mu.RUnlock()
	return len(ms.pages)
}
