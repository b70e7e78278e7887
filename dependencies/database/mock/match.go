package mock

import (
	"math"
	"reflect"
	"strings"

	"github.com/ti/docstore/dependencies/database"
	"go.mongodb.org/mongo-driver/bson"
)

// matches reports whether doc satisfies every criterion of query, _id
// criteria included.
func matches(doc database.Document, query database.Query) bool {
	for _, cond := range query {
		value, ok := doc.Lookup(cond.Path)
		if !ok {
			return false
		}
		if !matchCriterion(value, cond) {
			return false
		}
	}
	return true
}

func matchCriterion(value any, cond database.Criterion) bool {
	switch cond.Op {
	case database.Eq:
		return valuesEqual(value, cond.Value)
	case database.In:
		return containsAny(value, cond.Value)
	case database.Gte:
		cmp, ok := compareValues(value, cond.Value)
		return ok && cmp >= 0
	case database.Lte:
		cmp, ok := compareValues(value, cond.Value)
		return ok && cmp <= 0
	default:
		return false
	}
}

// containsAny reports whether value holds at least one element of set. A
// sequence value is searched, a scalar value must equal one element.
func containsAny(value, set any) bool {
	candidates, ok := asSlice(set)
	if !ok {
		return false
	}
	items, isSeq := asSlice(value)
	if !isSeq {
		items = []any{value}
	}
	for _, candidate := range candidates {
		if indexOf(items, candidate) >= 0 {
			return true
		}
	}
	return false
}

func indexOf(items []any, value any) int {
	for i, item := range items {
		if valuesEqual(item, value) {
			return i
		}
	}
	return -1
}

// asSlice converts any slice or array, except strings and bytes, to []any.
func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	case bson.A:
		return s, true
	case []byte, bson.D:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asDocument(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case database.Document:
		return m, true
	case map[string]any:
		return m, true
	case bson.M:
		return m, true
	case bson.D:
		out := make(map[string]any, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	default:
		return nil, false
	}
}

// valuesEqual compares numbers by value across widths, sequences and
// documents element by element, anything else with reflect.DeepEqual.
func valuesEqual(a, b any) bool {
	if x, ok := toNumber(a); ok {
		y, ok := toNumber(b)
		return ok && x.compare(y) == 0
	}
	if x, ok := asSlice(a); ok {
		y, ok := asSlice(b)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valuesEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	if x, ok := asDocument(a); ok {
		y, ok := asDocument(b)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !valuesEqual(xv, yv) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// compareValues orders numbers and strings, ok is false for any other pair.
func compareValues(a, b any) (cmp int, ok bool) {
	if x, isNum := toNumber(a); isNum {
		y, isNum := toNumber(b)
		if !isNum {
			return 0, false
		}
		return x.compare(y), true
	}
	x, isStr := a.(string)
	if !isStr {
		return 0, false
	}
	y, isStr := b.(string)
	if !isStr {
		return 0, false
	}
	return strings.Compare(x, y), true
}

// number holds integers exactly and falls back to float for mixed pairs.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func toNumber(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return number{f: float64(u), isFloat: true}, true
		}
		return number{i: int64(u)}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float(), isFloat: true}, true
	default:
		return number{}, false
	}
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n number) compare(o number) int {
	if !n.isFloat && !o.isFloat {
		switch {
		case n.i < o.i:
			return -1
		case n.i > o.i:
			return 1
		}
		return 0
	}
	x, y := n.float(), o.float()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
