package mock

import (
	"testing"

	"github.com/ti/docstore/dependencies/database"
	"go.mongodb.org/mongo-driver/bson"
)

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"int and float", 12, 12.0, true},
		{"int widths", int32(7), int64(7), true},
		{"strings", "Monday", "Monday", true},
		{"string and number", "12", 12, false},
		{"typed and untyped slices", []string{"a", "b"}, []any{"a", "b"}, true},
		{"slice order", []any{"a", "b"}, []any{"b", "a"}, false},
		{"nested documents", map[string]any{"days": []any{"Monday"}}, database.Document{"days": []string{"Monday"}}, true},
		{"document extra key", map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}, false},
		{"ordered document", bson.D{{Key: "start_time", Value: "15:15"}}, database.Document{"start_time": "15:15"}, true},
		{"ordered document mismatch", bson.D{{Key: "start_time", Value: "15:15"}}, bson.M{"start_time": "07:00"}, false},
		{"ordered document and slice", bson.D{{Key: "a", Value: 1}}, []any{bson.E{Key: "a", Value: 1}}, false},
		{"nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valuesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("valuesEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		cmp  int
		ok   bool
	}{
		{"ints", 3, 5, -1, true},
		{"int and float", 5, 4.5, 1, true},
		{"large ints", int64(1<<62 + 1), int64(1 << 62), 1, true},
		{"times of day", "15:15", "15:15", 0, true},
		{"string and int", "15:15", 3, 0, false},
		{"bools", true, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, ok := compareValues(tt.a, tt.b)
			if cmp != tt.cmp || ok != tt.ok {
				t.Errorf("compareValues(%v, %v) = %d, %v; want %d, %v", tt.a, tt.b, cmp, ok, tt.cmp, tt.ok)
			}
		})
	}
}

func TestMatchesID(t *testing.T) {
	doc := database.Document{"_id": "Math Club", "max_participants": 10}
	tests := []struct {
		name  string
		query database.Query
		want  bool
	}{
		{"eq", database.ByID("Math Club"), true},
		{"in", database.Query{{Path: "_id", Op: database.In, Value: []any{"Chess Club", "Math Club"}}}, true},
		{"not in", database.Query{{Path: "_id", Op: database.In, Value: []any{"Chess Club"}}}, false},
		{"gte", database.Query{{Path: "_id", Op: database.Gte, Value: "Zzz"}}, false},
		{"conflicting eq", database.Query{
			{Path: "_id", Value: "Math Club"},
			{Path: "_id", Value: "Chess Club"},
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matches(doc, tt.query); got != tt.want {
				t.Errorf("matches(%s) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
