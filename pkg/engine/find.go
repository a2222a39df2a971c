package engine

import (
	"fmt"

	"github.com/adfharrison1/go-docstore/pkg/domain"
	"github.com/adfharrison1/go-docstore/pkg/query"
)

// defaultFindOneSort orders by _id descending, so with generated ids the
// most recently created match wins.
var defaultFindOneSort = domain.SortSpec{{Field: domain.FieldID, Order: domain.Descending}}

// FindOne returns the first document matching the query under the given
// sort, or nil when nothing matches. A nil sort falls back to _id
// descending.
func (e *Engine) FindOne(collName string, q domain.Query, sort domain.SortSpec) (domain.Document, error) {
	if len(sort) == 0 {
		sort = defaultFindOneSort
	}

	matches, err := e.collect(collName, q)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	query.Sort(matches, sort)
	return matches[0], nil
}

// FindByID returns the document whose _id equals docID, or nil when the
// collection holds no such document.
func (e *Engine) FindByID(collName, docID string) (domain.Document, error) {
	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	var found domain.Document
	err = coll.View(func(docs []domain.Document) error {
		for _, doc := range docs {
			if doc.ID() == docID {
				found = doc.Clone()
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Find returns all documents matching the query: filter, then optional
// sort, then skip, then limit (0 = unbounded). The result is never nil.
func (e *Engine) Find(collName string, q domain.Query, opts *domain.FindOptions) ([]domain.Document, error) {
	if opts == nil {
		opts = &domain.FindOptions{}
	}
	if opts.Limit < 0 || opts.Skip < 0 {
		return nil, fmt.Errorf("limit and skip cannot be negative: %w", domain.ErrInvalidArgument)
	}

	matches, err := e.collect(collName, q)
	if err != nil {
		return nil, err
	}

	query.Sort(matches, opts.Sort)

	if opts.Skip >= len(matches) {
		return []domain.Document{}, nil
	}
	matches = matches[opts.Skip:]

	if opts.Limit > 0 && opts.Limit < len(matches) {
		matches = matches[:opts.Limit]
	}

	return matches, nil
}

// Count returns the number of documents matching the query. A nil or
// empty query counts the whole collection. No mutation, no persist.
func (e *Engine) Count(collName string, q domain.Query) (int64, error) {
	coll, err := e.store.Collection(collName)
	if err != nil {
		return 0, err
	}

	var count int64
	err = coll.View(func(docs []domain.Document) error {
		for _, doc := range docs {
			if query.Matches(doc, q) {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// collect snapshots every matching document in collection order. Clones
// are returned so callers can never mutate cached state through results.
func (e *Engine) collect(collName string, q domain.Query) ([]domain.Document, error) {
	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	matches := []domain.Document{}
	err = coll.View(func(docs []domain.Document) error {
		for _, doc := range docs {
			if query.Matches(doc, q) {
				matches = append(matches, doc.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
