package engine

import (
	"fmt"

	"github.com/adfharrison1/go-docstore/pkg/domain"
	"github.com/adfharrison1/go-docstore/pkg/query"
)

// UpsertOne inserts or updates a document. Resolution is an ordered
// fallthrough, each branch short-circuiting:
//
//  1. The document's _id matches an existing document: merge-update it.
//  2. The document's "key" field names one of its own fields, and some
//     existing document holds the same value there: merge-update that one.
//  3. Otherwise insert as a new document.
//
// Insertion is always possible, so exactly one of the update counts or
// the upsert fields is populated in the result, never both.
func (e *Engine) UpsertOne(collName string, doc domain.Document) (*domain.UpsertResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil: %w", domain.ErrInvalidArgument)
	}

	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	result := &domain.UpsertResult{}
	err = coll.Update(func(docs []domain.Document) ([]domain.Document, bool, error) {
		if target := e.resolveUpsert(docs, doc); target != nil {
			e.merge(target, doc.Clone())
			result.MatchedCount = 1
			result.ModifiedCount = 1
			return docs, true, nil
		}

		stored, err := e.prepareInsert(docs, doc)
		if err != nil {
			return nil, false, err
		}
		result.UpsertedID = stored.ID()
		result.UpsertedCount = 1
		return append(docs, stored), true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveUpsert finds the existing document an upsert should update, or
// nil when the insert branch applies.
func (e *Engine) resolveUpsert(docs []domain.Document, doc domain.Document) domain.Document {
	if id := doc.ID(); id != "" {
		for _, existing := range docs {
			if existing.ID() == id {
				return existing
			}
		}
	}

	keyField, _ := doc[domain.FieldUpsertKey].(string)
	if keyField == "" {
		return nil
	}
	keyValue, present := doc[keyField]
	if !present {
		return nil
	}
	for _, existing := range docs {
		if query.ValuesEqual(existing[keyField], keyValue) {
			return existing
		}
	}
	return nil
}
