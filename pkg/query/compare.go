package query

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Type precedence for cross-type comparisons. Numbers sort before
// strings, strings before objects and arrays, and booleans last.
// Existing callers rely on this exact ordering; do not realign it with
// any other database's collation.
const (
	rankNumber = iota
	rankString
	rankObject
	rankBool
)

// Compare implements a total order across heterogeneous field values,
// returning -1, 0 or 1. Documents are schemaless, so the same field may
// hold different types across documents and every pair must order.
//
// Nil (or a missing field) sorts before any defined value. Timestamps
// compare by instant, and against plain numbers they compare by their
// epoch milliseconds. Id tokens are plain strings, so their lexicographic
// order is their creation order. Two objects or arrays compare by their
// canonical JSON encoding.
func Compare(a, b interface{}) int {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return 0
		}
		if a == nil {
			return -1
		}
		return 1
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Compare(bt)
		}
	}

	if af, aok := asNumber(a); aok {
		if bf, bok := asNumber(b); bok {
			return compareFloats(af, bf)
		}
	}

	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs)
		}
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			return compareBools(ab, bb)
		}
	}

	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	// Both sides are object/array typed.
	return strings.Compare(canonical(a), canonical(b))
}

// Comparable reports whether an ordering comparison between a and b is
// meaningful: both numbers (timestamps included), both strings, or both
// timestamps. Range operators fail on incomparable pairs instead of
// falling back to type precedence.
func Comparable(a, b interface{}) bool {
	if a == nil || b == nil {
		return false
	}
	if _, aok := asNumber(a); aok {
		_, bok := asNumber(b)
		return bok
	}
	if _, aok := a.(string); aok {
		_, bok := b.(string)
		return bok
	}
	return false
}

func typeRank(v interface{}) int {
	if _, ok := asNumber(v); ok {
		return rankNumber
	}
	switch v.(type) {
	case string:
		return rankString
	case bool:
		return rankBool
	default:
		return rankObject
	}
}

func compareFloats(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if b {
		return -1
	}
	return 1
}

// asNumber converts the numeric types msgpack and callers produce to
// float64. Timestamps convert to epoch milliseconds so they order
// against plain numbers.
func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case time.Time:
		return float64(v.UnixMilli()), true
	default:
		return 0, false
	}
}

// canonical returns a deterministic string encoding of a compound value.
// encoding/json is used because it emits map keys in sorted order, which
// msgpack does not guarantee.
func canonical(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
