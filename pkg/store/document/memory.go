package document

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/de-tools/leak-finder/pkg/models/store"
)

// MemoryStore holds the serialized document in memory. It round-trips
// through JSON on every call so callers see the same copy semantics as the
// durable store.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.raw == nil {
		return nil, domain.ErrNotFound
	}
	var doc store.Document
	if err := json.Unmarshal(m.raw, &doc); err != nil {
		return nil, &domain.StorageError{Op: "decode", Err: err}
	}
	return &doc, nil
}

func (m *MemoryStore) Save(_ context.Context, doc *store.Document) error {
	doc.Version = store.SchemaVersion

	raw, err := json.Marshal(doc)
	if err != nil {
		return &domain.StorageError{Op: "encode", Err: err}
	}

	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
	return nil
}
