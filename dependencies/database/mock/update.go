package mock

import (
	"sort"

	"github.com/ti/docstore/dependencies/database"
)

// applyMutation mutates doc in place. It reports false when the field holds
// something other than a sequence, the document is then left untouched.
// A fresh slice is stored on every change so copies handed to readers keep
// their view.
func applyMutation(doc database.Document, mutation database.Mutation) bool {
	current, exists := doc[mutation.Field]
	switch mutation.Op {
	case database.Push:
		if !exists || current == nil {
			doc[mutation.Field] = []any{mutation.Value}
			return true
		}
		items, ok := asSlice(current)
		if !ok {
			return false
		}
		next := make([]any, len(items), len(items)+1)
		copy(next, items)
		doc[mutation.Field] = append(next, mutation.Value)
		return true
	case database.Pull:
		if !exists {
			return true
		}
		items, ok := asSlice(current)
		if !ok {
			return false
		}
		i := indexOf(items, mutation.Value)
		if i < 0 {
			return true
		}
		next := make([]any, 0, len(items)-1)
		next = append(next, items[:i]...)
		doc[mutation.Field] = append(next, items[i+1:]...)
		return true
	default:
		return false
	}
}

// distinctValues collects the distinct elements of the sequence at path
// across docs, sorted ascending. Documents without a sequence there are skipped.
func distinctValues(docs []database.Document, path string) []any {
	var values []any
	for _, doc := range docs {
		v, ok := doc.Lookup(path)
		if !ok {
			continue
		}
		items, ok := asSlice(v)
		if !ok {
			continue
		}
		for _, item := range items {
			if indexOf(values, item) < 0 {
				values = append(values, item)
			}
		}
	}
	sort.SliceStable(values, func(i, j int) bool {
		cmp, ok := compareValues(values[i], values[j])
		return ok && cmp < 0
	})
	return values
}
