package query

import (
	"testing"

	"github.com/adfharrison1/go-docstore/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_SingleField(t *testing.T) {
	docs := []domain.Document{
		{"name": "c"},
		{"name": "a"},
		{"name": "b"},
	}

	Sort(docs, domain.SortSpec{{Field: "name", Order: domain.Ascending}})

	assert.Equal(t, "a", docs[0]["name"])
	assert.Equal(t, "b", docs[1]["name"])
	assert.Equal(t, "c", docs[2]["name"])
}

func TestSort_Descending(t *testing.T) {
	docs := []domain.Document{
		{"age": 25},
		{"age": 40},
		{"age": 30},
	}

	Sort(docs, domain.SortSpec{{Field: "age", Order: domain.Descending}})

	assert.Equal(t, 40, docs[0]["age"])
	assert.Equal(t, 30, docs[1]["age"])
	assert.Equal(t, 25, docs[2]["age"])
}

func TestSort_Precedence(t *testing.T) {
	docs := []domain.Document{
		{"a": 1, "b": 2},
		{"a": 1, "b": 1},
	}

	Sort(docs, domain.SortSpec{
		{Field: "a", Order: domain.Ascending},
		{Field: "b", Order: domain.Ascending},
	})

	require.Len(t, docs, 2)
	assert.Equal(t, 1, docs[0]["b"])
	assert.Equal(t, 2, docs[1]["b"])
}

func TestSort_Stability(t *testing.T) {
	// Documents equal on every sort field keep their relative order.
	docs := []domain.Document{
		{"group": 1, "pos": "first"},
		{"group": 1, "pos": "second"},
		{"group": 0, "pos": "third"},
		{"group": 1, "pos": "fourth"},
	}

	Sort(docs, domain.SortSpec{{Field: "group", Order: domain.Ascending}})

	assert.Equal(t, "third", docs[0]["pos"])
	assert.Equal(t, "first", docs[1]["pos"])
	assert.Equal(t, "second", docs[2]["pos"])
	assert.Equal(t, "fourth", docs[3]["pos"])
}

func TestSort_MissingFieldSortsFirst(t *testing.T) {
	docs := []domain.Document{
		{"age": 30},
		{},
		{"age": 25},
	}

	Sort(docs, domain.SortSpec{{Field: "age", Order: domain.Ascending}})

	assert.Nil(t, docs[0]["age"])
	assert.Equal(t, 25, docs[1]["age"])
	assert.Equal(t, 30, docs[2]["age"])
}

func TestSort_MixedTypes(t *testing.T) {
	// number < string < object < boolean
	docs := []domain.Document{
		{"v": true},
		{"v": "text"},
		{"v": 7},
		{"v": map[string]interface{}{"k": 1}},
	}

	Sort(docs, domain.SortSpec{{Field: "v", Order: domain.Ascending}})

	assert.Equal(t, 7, docs[0]["v"])
	assert.Equal(t, "text", docs[1]["v"])
	assert.Equal(t, map[string]interface{}{"k": 1}, docs[2]["v"])
	assert.Equal(t, true, docs[3]["v"])
}

func TestSort_EmptySpecKeepsOrder(t *testing.T) {
	docs := []domain.Document{
		{"n": 3},
		{"n": 1},
		{"n": 2},
	}

	Sort(docs, nil)

	assert.Equal(t, 3, docs[0]["n"])
	assert.Equal(t, 1, docs[1]["n"])
	assert.Equal(t, 2, docs[2]["n"])
}
