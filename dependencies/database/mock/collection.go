package mock

import (
	"context"
	"reflect"
	"sync"

	"github.com/ti/docstore/dependencies/database"
	"github.com/ti/docstore/log"
)

// collection keeps documents by _id in first-insertion order.
type collection struct {
	mu       sync.RWMutex
	database string
	name     string
	docs     map[any]database.Document
	order    []any
	closed   bool
}

func newCollection(db, name string) *collection {
	return &collection{
		database: db,
		name:     name,
		docs:     make(map[any]database.Document),
	}
}

func (c *collection) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.docs = nil
	c.order = nil
	documentsGauge.DeleteLabelValues(c.database, c.name)
}

func (c *collection) logger(ctx context.Context, action string) log.StdLogger {
	return log.Extract(ctx).With(map[string]any{
		"action":     action,
		"collection": c.name,
	})
}

// storageKey returns id as a map key, ids of incomparable types have none.
func storageKey(id any) (any, bool) {
	if id == nil {
		return nil, false
	}
	if !reflect.TypeOf(id).Comparable() {
		return nil, false
	}
	return id, true
}

// selectDocs returns the stored documents matching query, at most limit
// when limit > 0. An _id equality resolves by key, every criterion still applies.
func (c *collection) selectDocs(query database.Query, limit int) []database.Document {
	if id, ok := query.ID(); ok {
		key, ok := storageKey(id)
		if !ok {
			return nil
		}
		doc, found := c.docs[key]
		if !found || !matches(doc, query) {
			return nil
		}
		return []database.Document{doc}
	}
	var out []database.Document
	for _, key := range c.order {
		doc := c.docs[key]
		if matches(doc, query) {
			out = append(out, doc)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// Find finds documents matching the query
func (c *collection) Find(_ context.Context, query database.Query) ([]database.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	operationCounter.WithLabelValues(c.database, c.name, "find").Inc()
	if c.closed {
		return nil, ErrClosed
	}

	found := c.selectDocs(query, 0)
	out := make([]database.Document, 0, len(found))
	for _, doc := range found {
		out = append(out, doc.Clone())
	}
	return out, nil
}

// FindOne finds the first document matching the query, nil when there is none.
func (c *collection) FindOne(_ context.Context, query database.Query) (database.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	operationCounter.WithLabelValues(c.database, c.name, "find_one").Inc()
	if c.closed {
		return nil, ErrClosed
	}

	found := c.selectDocs(query, 1)
	if len(found) == 0 {
		return nil, nil
	}
	return found[0].Clone(), nil
}

// InsertOne stores doc under its _id, replacing any document already there.
func (c *collection) InsertOne(ctx context.Context, doc database.Document) (*database.InsertResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	operationCounter.WithLabelValues(c.database, c.name, "insert_one").Inc()
	if c.closed {
		return nil, ErrClosed
	}

	id, ok := doc.ID()
	if !ok {
		return nil, NewInvalidArgumentError(database.IDField, "document has no identifier")
	}
	key, ok := storageKey(id)
	if !ok {
		return nil, NewInvalidArgumentError(database.IDField, "identifier must be a comparable value")
	}
	if _, exists := c.docs[key]; exists {
		c.logger(ctx, "insert_one").Debug("replacing document %v", id)
	} else {
		c.order = append(c.order, key)
	}
	c.docs[key] = doc.Clone()
	documentsGauge.WithLabelValues(c.database, c.name).Set(float64(len(c.docs)))
	return &database.InsertResult{InsertedID: id}, nil
}

// UpdateOne applies update to the document resolved by the _id filter.
func (c *collection) UpdateOne(ctx context.Context, filter database.Query,
	update database.Update,
) (*database.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	operationCounter.WithLabelValues(c.database, c.name, "update_one").Inc()
	if c.closed {
		return nil, ErrClosed
	}

	if _, ok := filter.ID(); !ok {
		c.logger(ctx, "update_one").Debug("filter %s has no _id, nothing updated", filter)
		return &database.UpdateResult{}, nil
	}
	found := c.selectDocs(filter, 1)
	if len(found) == 0 {
		c.logger(ctx, "update_one").Debug("no document for filter %s", filter)
		return &database.UpdateResult{}, nil
	}
	doc := found[0]
	for _, mutation := range update {
		if !applyMutation(doc, mutation) {
			c.logger(ctx, "update_one").Debug("field %s of %v is not a sequence, %v skipped",
				mutation.Field, doc[database.IDField], mutation.Op)
		}
	}
	return &database.UpdateResult{ModifiedCount: 1}, nil
}

// CountDocuments counts the documents Find would return.
func (c *collection) CountDocuments(_ context.Context, query database.Query) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	operationCounter.WithLabelValues(c.database, c.name, "count_documents").Inc()
	if c.closed {
		return 0, ErrClosed
	}

	if len(query) == 0 {
		return int64(len(c.docs)), nil
	}
	return int64(len(c.selectDocs(query, 0))), nil
}

// Aggregate runs the distinct schedule days pipeline, other shapes give an empty result.
func (c *collection) Aggregate(ctx context.Context, pipeline database.Pipeline) ([]database.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	operationCounter.WithLabelValues(c.database, c.name, "aggregate").Inc()
	if c.closed {
		return nil, ErrClosed
	}

	path, ok := pipeline.UnwindPath()
	if len(pipeline) != 3 || !ok || path != database.ScheduleDaysPath {
		c.logger(ctx, "aggregate").Warn("unsupported pipeline with %d stages, returning no groups", len(pipeline))
		return []database.Document{}, nil
	}
	values := distinctValues(c.docsInOrder(), path)
	out := make([]database.Document, len(values))
	for i, v := range values {
		out[i] = database.Document{database.IDField: v}
	}
	return out, nil
}

func (c *collection) docsInOrder() []database.Document {
	docs := make([]database.Document, len(c.order))
	for i, key := range c.order {
		docs[i] = c.docs[key]
	}
	return docs
}
