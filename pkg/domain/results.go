package domain

// InsertOneResult reports the outcome of CreateOne.
type InsertOneResult struct {
	InsertedID string `json:"inserted_id"`
}

// InsertManyResult reports the outcome of CreateMany. InsertedIDs is in
// input order.
type InsertManyResult struct {
	InsertedCount int64    `json:"inserted_count"`
	InsertedIDs   []string `json:"inserted_ids"`
}

// UpdateResult reports the outcome of UpdateOne/UpdateMany. Counts cover
// only the documents examined by this call.
type UpdateResult struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// UpsertResult reports the outcome of UpsertOne. Exactly one of the
// update counts or the upsert fields is populated, never both.
type UpsertResult struct {
	UpsertedID    string `json:"upserted_id,omitempty"`
	UpsertedCount int64  `json:"upserted_count,omitempty"`
	MatchedCount  int64  `json:"matched_count"`
	ModifiedCount int64  `json:"modified_count"`
}

// DeleteResult reports the outcome of DeleteOne/DeleteMany.
type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
