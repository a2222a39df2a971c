package engine

import (
	"fmt"

	"github.com/adfharrison1/go-docstore/pkg/domain"
	"github.com/adfharrison1/go-docstore/pkg/query"
)

// UpdateOne merges the document's fields over the existing document with
// the same _id and refreshes updatedAt. The document must carry an _id;
// when no document matches, counts are zero and nothing is persisted.
func (e *Engine) UpdateOne(collName string, doc domain.Document) (*domain.UpdateResult, error) {
	if doc.ID() == "" {
		return nil, fmt.Errorf("update requires a document with an _id: %w", domain.ErrInvalidArgument)
	}

	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	result := &domain.UpdateResult{}
	err = coll.Update(func(docs []domain.Document) ([]domain.Document, bool, error) {
		for _, existing := range docs {
			if existing.ID() != doc.ID() {
				continue
			}
			e.merge(existing, doc.Clone())
			result.MatchedCount = 1
			result.ModifiedCount = 1
			return docs, true, nil
		}
		return docs, false, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateMany merges patch over every document matching the query,
// refreshing updatedAt on each, with a single persist at the end.
func (e *Engine) UpdateMany(collName string, q domain.Query, patch domain.Document) (*domain.UpdateResult, error) {
	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	result := &domain.UpdateResult{}
	err = coll.Update(func(docs []domain.Document) ([]domain.Document, bool, error) {
		for _, existing := range docs {
			if !query.Matches(existing, q) {
				continue
			}
			e.merge(existing, patch.Clone())
			result.MatchedCount++
			result.ModifiedCount++
		}
		return docs, result.ModifiedCount > 0, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
