package domain

// Reserved document fields owned by the engine.
const (
	FieldID        = "_id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	// FieldUpsertKey names the field an upsert matches on when no _id is
	// supplied, e.g. {key: "email", email: "x@y.com"} matches on "email".
	FieldUpsertKey = "key"
)

// Document represents a schemaless document in the database
type Document map[string]interface{}

// ID returns the document's _id, or "" if it has none
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// Clone returns a deep copy of the document. Nested maps and slices are
// copied recursively so mutations on the copy never reach the original.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	clone := make(Document, len(d))
	for k, v := range d {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Document:
		return val.Clone()
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
