// Package engine implements the document-store contract over the
// embedded, file-persisted collection store. It is the in-process
// counterpart of the network database wrappers that satisfy the same
// domain.Connector interface.
package engine

import (
	"time"

	"github.com/adfharrison1/go-docstore/pkg/domain"
	"github.com/adfharrison1/go-docstore/pkg/oid"
	"github.com/adfharrison1/go-docstore/pkg/storage"
)

// Engine exposes CRUD, query and upsert operations over named
// collections of schemaless documents. Every mutating operation takes
// the target collection's mutation slot, applies the change in memory,
// and persists the full collection write-through before returning.
type Engine struct {
	store *storage.Store
	ids   *oid.Generator

	// now is swapped out in tests to pin timestamps
	now func() time.Time
}

var _ domain.Connector = (*Engine)(nil)

// New creates an engine rooted at the configured storage directory.
func New(options ...Option) *Engine {
	cfg := &config{dataDir: "."}
	for _, option := range options {
		option(cfg)
	}

	return &Engine{
		store: storage.NewStore(storage.WithDataDir(cfg.dataDir)),
		ids:   oid.NewGenerator(),
		now:   time.Now,
	}
}

// Close releases all cached collection handles. On-disk data stays in
// place; the engine must not be used afterwards.
func (e *Engine) Close() error {
	return e.store.Close()
}

// stamp sets the engine-owned timestamp fields on a document about to be
// inserted.
func (e *Engine) stamp(doc domain.Document) {
	now := e.now()
	doc[domain.FieldCreatedAt] = now
	doc[domain.FieldUpdatedAt] = now
}

// merge applies patch fields over an existing document and refreshes
// updatedAt. _id and createdAt are engine-owned and never overwritten.
func (e *Engine) merge(existing, patch domain.Document) {
	for key, value := range patch {
		if key == domain.FieldID || key == domain.FieldCreatedAt {
			continue
		}
		existing[key] = value
	}
	existing[domain.FieldUpdatedAt] = e.now()
}
