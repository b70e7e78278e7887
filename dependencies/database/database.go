// Package database defines the document collection contract shared by the
// in-memory store and the mongo backend.
package database

import (
	"context"
	"fmt"
	"net/url"
)

// Database holds named collections.
type Database interface {
	// Collection returns the named collection, creating it empty when needed.
	Collection(name string) Collection
	Close(ctx context.Context) error
}

// Collection the document-store operations an application may call.
//
// Lookups are fail-soft: "not found" is a nil document or an empty slice,
// "not modified" is a zero ModifiedCount. The error return is reserved for
// backend failures and caller contract violations.
type Collection interface {
	// Find returns every document matching query, an empty query matches all.
	Find(ctx context.Context, query Query) ([]Document, error)
	// FindOne returns the first match or nil. An _id equality is a direct key lookup.
	FindOne(ctx context.Context, query Query) (Document, error)
	// InsertOne stores doc under its _id, replacing any document with the same id.
	InsertOne(ctx context.Context, doc Document) (*InsertResult, error)
	// UpdateOne applies update to the document the _id filter resolves to.
	UpdateOne(ctx context.Context, filter Query, update Update) (*UpdateResult, error)
	// CountDocuments counts the documents Find would return.
	CountDocuments(ctx context.Context, query Query) (int64, error)
	// Aggregate runs pipeline, unsupported shapes return an empty result.
	Aggregate(ctx context.Context, pipeline Pipeline) ([]Document, error)
}

// InsertResult the result of InsertOne.
type InsertResult struct {
	InsertedID any
}

// UpdateResult the result of UpdateOne.
type UpdateResult struct {
	ModifiedCount int64
}

// New opens a database by uri, the scheme selects the implementation:
// mock://local/school or mongodb://127.0.0.1:27017/school.
func New(ctx context.Context, uri string) (Database, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	newFn, ok := implements[u.Scheme]
	if !ok {
		return nil, fmt.Errorf("%s not implement", u.Scheme)
	}
	return newFn(ctx, u)
}

var implements = make(map[string]func(context.Context, *url.URL) (Database, error))

// RegisterImplements register implements.
func RegisterImplements(scheme string, newFN func(context.Context, *url.URL) (Database, error)) {
	implements[scheme] = newFN
}
