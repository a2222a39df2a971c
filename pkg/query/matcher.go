package query

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/adfharrison1/go-docstore/pkg/domain"
)

// Matches checks if a document satisfies the given query. Conditions are
// conjunctive: every field listed in the query must hold. A nil or empty
// query matches every document. A field absent from the document is
// treated as nil, so $ne/$nin against it succeed while $eq and the range
// operators fail.
func Matches(doc domain.Document, q domain.Query) bool {
	for field, cond := range q {
		if !fieldMatches(doc[field], cond) {
			return false
		}
	}
	return true
}

func fieldMatches(value, cond interface{}) bool {
	ops, isOps := operatorObject(cond)
	if !isOps {
		return ValuesEqual(value, cond)
	}

	for op, arg := range ops {
		switch op {
		case "$eq":
			if !ValuesEqual(value, arg) {
				return false
			}
		case "$ne":
			if ValuesEqual(value, arg) {
				return false
			}
		case "$gt":
			if !orderedMatch(value, arg, func(c int) bool { return c > 0 }) {
				return false
			}
		case "$gte":
			if !orderedMatch(value, arg, func(c int) bool { return c >= 0 }) {
				return false
			}
		case "$lt":
			if !orderedMatch(value, arg, func(c int) bool { return c < 0 }) {
				return false
			}
		case "$lte":
			if !orderedMatch(value, arg, func(c int) bool { return c <= 0 }) {
				return false
			}
		case "$in":
			if !isMember(value, arg) {
				return false
			}
		case "$nin":
			if isMember(value, arg) {
				return false
			}
		case "$regex":
			if !regexMatch(value, arg, ops["$options"]) {
				return false
			}
		case "$options":
			// Consumed alongside $regex.
		default:
			// Unknown operators are ignored for forward compatibility.
		}
	}
	return true
}

// operatorObject reports whether cond is an operator object, i.e. a map
// with at least one $-prefixed key. A plain nested map is an equality
// condition instead.
func operatorObject(cond interface{}) (map[string]interface{}, bool) {
	var m map[string]interface{}
	switch c := cond.(type) {
	case map[string]interface{}:
		m = c
	case domain.Document:
		m = c
	case domain.Query:
		m = c
	default:
		return nil, false
	}
	for key := range m {
		if strings.HasPrefix(key, "$") {
			return m, true
		}
	}
	return nil, false
}

// ValuesEqual compares two values for equality, handling mixed numeric
// widths and timestamps. Compound values use deep equality.
func ValuesEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Equal(bt)
		}
	}
	if af, aok := asNumber(a); aok {
		if bf, bok := asNumber(b); bok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func orderedMatch(value, arg interface{}, holds func(int) bool) bool {
	if !Comparable(value, arg) {
		return false
	}
	return holds(Compare(value, arg))
}

func isMember(value, arg interface{}) bool {
	items, ok := arg.([]interface{})
	if !ok {
		return false
	}
	for _, item := range items {
		if ValuesEqual(value, item) {
			return true
		}
	}
	return false
}

// regexMatch evaluates $regex with its optional $options flags. The
// field value is stringified before matching; a missing field never
// matches.
func regexMatch(value, pattern, options interface{}) bool {
	if value == nil {
		return false
	}
	expr, ok := pattern.(string)
	if !ok {
		return false
	}
	if opts, ok := options.(string); ok && opts != "" {
		var flags strings.Builder
		for _, f := range opts {
			switch f {
			case 'i', 'm', 's':
				flags.WriteRune(f)
			}
		}
		if flags.Len() > 0 {
			expr = "(?" + flags.String() + ")" + expr
		}
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return false
	}

	str, ok := value.(string)
	if !ok {
		str = fmt.Sprint(value)
	}
	return re.MatchString(str)
}
