package domain

// Query is a conjunctive per-field condition. A field maps either to a
// literal value (equality) or to an operator object such as
// {"$gte": 30, "$lt": 40}. A nil or empty query matches every document.
type Query map[string]interface{}

// Sort directions. Values follow the usual document-database convention.
const (
	Ascending  = 1
	Descending = -1
)

// SortField pairs a field name with a direction.
type SortField struct {
	Field string
	Order int
}

// SortSpec is an ordered list of sort fields; the first entry is the
// primary sort key and later entries break ties in order.
type SortSpec []SortField

// FindOptions controls pagination and ordering for Find.
type FindOptions struct {
	// Limit caps the number of returned documents; 0 means unbounded.
	Limit int
	// Skip drops that many matching documents before collecting results.
	Skip int
	// Sort is applied before Skip/Limit. Empty means collection order.
	Sort SortSpec
}
