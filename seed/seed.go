// Package seed fills an empty school database with the starter dataset.
package seed

import (
	"context"
	"fmt"

	"github.com/ti/docstore/dependencies/database"
	"github.com/ti/docstore/log"
	"github.com/ti/docstore/password"
	"golang.org/x/sync/errgroup"
)

// Collection names.
const (
	Activities = "activities"
	Teachers   = "teachers"
)

// Bootstrap seeds each collection that is currently empty. Collections
// already holding documents are left alone, so calling it again is a no-op.
func Bootstrap(ctx context.Context, db database.Database, hasher password.Hasher) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return seedIfEmpty(ctx, db.Collection(Activities), activityDocuments)
	})
	g.Go(func() error {
		return seedIfEmpty(ctx, db.Collection(Teachers), func() ([]database.Document, error) {
			return teacherDocuments(hasher)
		})
	})
	return g.Wait()
}

func seedIfEmpty(ctx context.Context, col database.Collection,
	documents func() ([]database.Document, error),
) error {
	logger := log.Extract(ctx).Action("seed")
	count, err := col.CountDocuments(ctx, nil)
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if count > 0 {
		logger.Debug("collection already holds %d documents, skipped", count)
		return nil
	}
	docs, err := documents()
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err = ctx.Err(); err != nil {
			return err
		}
		if _, err = col.InsertOne(ctx, doc); err != nil {
			return fmt.Errorf("insert %v: %w", doc[database.IDField], err)
		}
	}
	logger.Info("seeded %d documents", len(docs))
	return nil
}

func activityDocuments() ([]database.Document, error) {
	docs := make([]database.Document, len(activities))
	for i, a := range activities {
		docs[i] = a.document()
	}
	return docs, nil
}

func teacherDocuments(hasher password.Hasher) ([]database.Document, error) {
	docs := make([]database.Document, len(teachers))
	for i, t := range teachers {
		hashed, err := hasher.Hash(t.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password of %s: %w", t.Username, err)
		}
		docs[i] = t.document(hashed)
	}
	return docs, nil
}
