package engine

import (
	"github.com/adfharrison1/go-docstore/pkg/domain"
	"github.com/adfharrison1/go-docstore/pkg/query"
)

// DeleteOne removes the document whose _id equals docID. Deleting an
// absent id is not an error; the count is simply zero.
func (e *Engine) DeleteOne(collName, docID string) (*domain.DeleteResult, error) {
	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	result := &domain.DeleteResult{}
	err = coll.Update(func(docs []domain.Document) ([]domain.Document, bool, error) {
		for i, doc := range docs {
			if doc.ID() == docID {
				result.DeletedCount = 1
				return append(docs[:i], docs[i+1:]...), true, nil
			}
		}
		return docs, false, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteMany removes every document matching the query.
func (e *Engine) DeleteMany(collName string, q domain.Query) (*domain.DeleteResult, error) {
	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	result := &domain.DeleteResult{}
	err = coll.Update(func(docs []domain.Document) ([]domain.Document, bool, error) {
		remaining := docs[:0]
		for _, doc := range docs {
			if query.Matches(doc, q) {
				result.DeletedCount++
				continue
			}
			remaining = append(remaining, doc)
		}
		return remaining, result.DeletedCount > 0, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
