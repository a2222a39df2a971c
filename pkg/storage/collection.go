package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/adfharrison1/go-docstore/pkg/domain"
)

// Collection owns one named collection's documents in memory and its
// backing file. The write side of its lock is the collection's single
// mutation admission slot: one in-flight mutating operation at a time,
// with concurrent mutations queued on the lock.
type Collection struct {
	name string
	path string

	mu   sync.RWMutex
	docs []domain.Document
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// View runs fn with shared access to the in-memory document sequence.
// fn must not mutate the slice or retain it past the call. Reads do not
// take the mutation slot, so they observe whatever state is currently
// cached, even while a mutation is queued.
func (c *Collection) View(fn func(docs []domain.Document) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fn(c.docs)
}

// Update acquires the collection's mutation slot, applies fn to the
// document sequence, and persists the full sequence write-through before
// releasing the slot. fn returns the replacement sequence and whether
// anything changed; an unchanged sequence skips the persist.
//
// If the persist fails the in-memory sequence is kept, not rolled back:
// memory is then ahead of disk and subsequent reads observe the newer
// in-memory state. The caller owns any retry policy.
func (c *Collection) Update(fn func(docs []domain.Document) ([]domain.Document, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs, changed, err := fn(c.docs)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	c.docs = docs
	return c.persist()
}

// persist overwrites the backing file with the full in-memory sequence.
// The write goes to a temp file first and is renamed into place, so the
// file always shows either the previous or the new complete content.
func (c *Collection) persist() error {
	data, err := encodeCollection(c.docs)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w: %w", c.name, domain.ErrStorageIO, err)
	}

	tempPath := c.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write collection file %q: %w: %w", c.path, domain.ErrStorageIO, err)
	}

	if err := os.Rename(tempPath, c.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename collection file %q: %w: %w", c.path, domain.ErrStorageIO, err)
	}

	return nil
}

// load reads the backing file into memory. A missing file yields an
// empty collection; unreadable or undecodable content surfaces as an
// error rather than silently becoming an empty collection.
func (c *Collection) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.docs = nil
			return nil
		}
		return fmt.Errorf("failed to read collection file %q: %w: %w", c.path, domain.ErrStorageIO, err)
	}

	docs, err := decodeCollection(data)
	if err != nil {
		return fmt.Errorf("failed to decode collection file %q: %w: %w", c.path, domain.ErrStorageIO, err)
	}

	c.docs = docs
	return nil
}
