package engine

import (
	"fmt"

	"github.com/adfharrison1/go-docstore/pkg/domain"
)

// CreateOne inserts a document into a collection, assigning an _id when
// the document has none and stamping createdAt/updatedAt.
func (e *Engine) CreateOne(collName string, doc domain.Document) (*domain.InsertOneResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil: %w", domain.ErrInvalidArgument)
	}

	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	var insertedID string
	err = coll.Update(func(docs []domain.Document) ([]domain.Document, bool, error) {
		stored, err := e.prepareInsert(docs, doc)
		if err != nil {
			return nil, false, err
		}
		insertedID = stored.ID()
		return append(docs, stored), true, nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.InsertOneResult{InsertedID: insertedID}, nil
}

// CreateMany inserts documents in input order with a single persist at
// the end. Either every document is inserted or none are.
func (e *Engine) CreateMany(collName string, docs []domain.Document) (*domain.InsertManyResult, error) {
	for _, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("document cannot be nil: %w", domain.ErrInvalidArgument)
		}
	}

	coll, err := e.store.Collection(collName)
	if err != nil {
		return nil, err
	}

	insertedIDs := make([]string, 0, len(docs))
	err = coll.Update(func(existing []domain.Document) ([]domain.Document, bool, error) {
		for _, doc := range docs {
			stored, err := e.prepareInsert(existing, doc)
			if err != nil {
				return nil, false, err
			}
			insertedIDs = append(insertedIDs, stored.ID())
			existing = append(existing, stored)
		}
		return existing, len(docs) > 0, nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.InsertManyResult{
		InsertedCount: int64(len(insertedIDs)),
		InsertedIDs:   insertedIDs,
	}, nil
}

// prepareInsert clones the input document, resolves its _id, and stamps
// the engine-owned timestamps. An explicit _id is honored but must be a
// string and must not collide with an existing document.
func (e *Engine) prepareInsert(existing []domain.Document, doc domain.Document) (domain.Document, error) {
	stored := doc.Clone()

	if raw, present := stored[domain.FieldID]; present {
		id, ok := raw.(string)
		if !ok || id == "" {
			return nil, fmt.Errorf("document _id must be a non-empty string, got %T: %w", raw, domain.ErrInvalidArgument)
		}
		for _, d := range existing {
			if d.ID() == id {
				return nil, fmt.Errorf("duplicate _id %q in collection: %w", id, domain.ErrInvalidArgument)
			}
		}
	} else {
		stored[domain.FieldID] = e.ids.NewID()
	}

	e.stamp(stored)
	return stored, nil
}
