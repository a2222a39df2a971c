package domain

// Connector is the uniform document-store contract. It is implemented by
// the embedded engine in this repository and by external database
// wrappers, so callers can swap backends by configuration alone.
type Connector interface {
	CreateOne(collName string, doc Document) (*InsertOneResult, error)
	CreateMany(collName string, docs []Document) (*InsertManyResult, error)
	FindOne(collName string, query Query, sort SortSpec) (Document, error)
	FindByID(collName, docID string) (Document, error)
	Find(collName string, query Query, opts *FindOptions) ([]Document, error)
	UpdateOne(collName string, doc Document) (*UpdateResult, error)
	UpdateMany(collName string, query Query, patch Document) (*UpdateResult, error)
	UpsertOne(collName string, doc Document) (*UpsertResult, error)
	DeleteOne(collName, docID string) (*DeleteResult, error)
	DeleteMany(collName string, query Query) (*DeleteResult, error)
	Count(collName string, query Query) (int64, error)
	Close() error
}
