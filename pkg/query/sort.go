package query

import (
	"sort"

	"github.com/adfharrison1/go-docstore/pkg/domain"
)

// Sort orders docs in place by the given spec. The first field is the
// primary sort key and later fields break ties in order. The sort is
// stable, so documents equal on every field keep their relative order.
func Sort(docs []domain.Document, spec domain.SortSpec) {
	if len(spec) == 0 {
		return
	}

	sort.SliceStable(docs, func(i, j int) bool {
		for _, sf := range spec {
			c := Compare(docs[i][sf.Field], docs[j][sf.Field])
			if c == 0 {
				continue
			}
			if sf.Order == domain.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}
