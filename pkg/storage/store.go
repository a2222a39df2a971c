package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/adfharrison1/go-docstore/pkg/domain"
)

// Store owns the mapping from collection name to handle. Collections are
// loaded lazily on first reference and cached for the lifetime of the
// store; the cache is the sole authority on content between writes.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*Collection
	closed      bool

	dataDir string
}

// NewStore creates a new store rooted at the configured data directory.
func NewStore(options ...Option) *Store {
	store := &Store{
		collections: make(map[string]*Collection),
		dataDir:     ".",
	}

	for _, option := range options {
		option(store)
	}

	return store
}

// Collection returns the cached handle for the named collection, loading
// it from disk on first access. Two concurrent callers for the same name
// get the same handle.
func (s *Store) Collection(name string) (*Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty: %w", domain.ErrInvalidArgument)
	}

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, fmt.Errorf("store is closed: %w", domain.ErrInvalidArgument)
	}
	if coll, exists := s.collections[name]; exists {
		s.mu.RUnlock()
		return coll, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("store is closed: %w", domain.ErrInvalidArgument)
	}

	// Double-check in case another goroutine loaded it
	if coll, exists := s.collections[name]; exists {
		return coll, nil
	}

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %q: %w: %w", s.dataDir, domain.ErrStorageIO, err)
	}

	coll := &Collection{
		name: name,
		path: filepath.Join(s.dataDir, name+FileExtension),
	}
	if err := coll.load(); err != nil {
		return nil, err
	}

	log.Printf("INFO: Loaded collection '%s' with %d documents", name, len(coll.docs))
	s.collections[name] = coll
	return coll, nil
}

// Close releases all cached collection handles. On-disk data is left
// untouched; every mutation was already persisted write-through.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections = make(map[string]*Collection)
	s.closed = true
	return nil
}
