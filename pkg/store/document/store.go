// Package document persists the single root document every facade
// operation reads and rewrites whole. There is no field-level persistence
// and no cross-writer locking; the last writer wins.
package document

import (
	"context"

	"github.com/de-tools/leak-finder/pkg/models/store"
)

// DefaultName is the key the document is stored under.
const DefaultName = "cloud_leak_finder_db"

type Store interface {
	// Load returns the current document, or domain.ErrNotFound when none
	// has been written yet.
	Load(ctx context.Context) (*store.Document, error)
	// Save replaces the whole document.
	Save(ctx context.Context, doc *store.Document) error
}
