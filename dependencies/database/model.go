package database

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// IDField the identifier field, also the storage key of a document.
const IDField = "_id"

// Document a record, values may be scalars, nested Documents or sequences.
type Document map[string]any

// ID returns the identifier of the document.
func (d Document) ID() (any, bool) {
	id, ok := d[IDField]
	return id, ok
}

// Lookup resolves a dotted path such as "schedule_details.days" by
// descending nested documents. It reports false when a segment is absent
// or an intermediate value is not a document.
func (d Document) Lookup(path string) (any, bool) {
	var current any = d
	for _, part := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Clone returns a shallow copy, nested values are shared.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return m, true
	case bson.M:
		return m, true
	case bson.D:
		return m.Map(), true
	default:
		return nil, false
	}
}

// Operator the criterion operator.
type Operator uint8

// Operator
const (
	// Eq =
	Eq Operator = iota
	// In the value shares at least one element with the set
	In
	// Gte >=
	Gte
	// Lte <=
	Lte
)

func (o Operator) String() string {
	switch o {
	case Eq:
		return "$eq"
	case In:
		return "$in"
	case Gte:
		return "$gte"
	case Lte:
		return "$lte"
	default:
		return fmt.Sprintf("Operator(%d)", uint8(o))
	}
}

// Criterion one condition on a field path.
type Criterion struct {
	Path  string
	Op    Operator
	Value any
}

// Query the criteria, all must hold. An empty Query matches everything.
type Query []Criterion

// ByID the query for a direct identifier lookup.
func ByID(id any) Query {
	return Query{{Path: IDField, Value: id}}
}

// ID returns the value of the first _id equality criterion.
func (q Query) ID() (any, bool) {
	for _, c := range q {
		if c.Path == IDField && c.Op == Eq {
			return c.Value, true
		}
	}
	return nil, false
}

// String print the query as string
func (q Query) String() (result string) {
	for _, c := range q {
		result += fmt.Sprintf("[%s %v %v]", c.Path, c.Op, c.Value)
	}
	return
}

// UpdateOperator the array operator of a Mutation.
type UpdateOperator uint8

// UpdateOperator
const (
	// Push appends the value, creating the sequence when absent.
	Push UpdateOperator = iota
	// Pull removes the first occurrence of the value.
	Pull
)

func (o UpdateOperator) String() string {
	switch o {
	case Push:
		return "$push"
	case Pull:
		return "$pull"
	default:
		return fmt.Sprintf("UpdateOperator(%d)", uint8(o))
	}
}

// Mutation one array operation on a top level field.
type Mutation struct {
	Field string
	Op    UpdateOperator
	Value any
}

// Update the mutations, applied in order.
type Update []Mutation
