package mongo

import (
	"context"

	"github.com/ti/docstore/dependencies/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type collection struct {
	name string
	col  *mongo.Collection
}

// Find find documents
func (c *collection) Find(ctx context.Context, query database.Query) ([]database.Document, error) {
	cur, err := c.col.Find(ctx, getCondition(query))
	if err != nil {
		return nil, convertToStatusError(c.name, err)
	}
	return c.decodeAll(ctx, cur)
}

// FindOne find one, a missing document is nil without error.
func (c *collection) FindOne(ctx context.Context, query database.Query) (database.Document, error) {
	var raw bson.M
	err := c.col.FindOne(ctx, getCondition(query)).Decode(&raw)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, nil
		}
		return nil, convertToStatusError(c.name, err)
	}
	return fromBSON(raw), nil
}

// InsertOne replaces or creates the document with the same _id.
func (c *collection) InsertOne(ctx context.Context, doc database.Document) (*database.InsertResult, error) {
	id, ok := doc.ID()
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s document has no %s", c.name, database.IDField)
	}
	_, err := c.col.ReplaceOne(ctx, bson.D{{Key: database.IDField, Value: id}}, bson.M(doc),
		options.Replace().SetUpsert(true))
	if err != nil {
		return nil, convertToStatusError(c.name, err)
	}
	return &database.InsertResult{InsertedID: id}, nil
}

// UpdateOne applies the array operators, ModifiedCount is the matched count.
// The server's $pull removes every equal element, not only the first. A
// field pushed and pulled in one update is sent as successive updates, the
// server rejects both operators on one path.
func (c *collection) UpdateOne(ctx context.Context, filter database.Query,
	update database.Update,
) (*database.UpdateResult, error) {
	if _, ok := filter.ID(); !ok {
		return &database.UpdateResult{}, nil
	}
	if len(update) == 0 {
		n, err := c.col.CountDocuments(ctx, getCondition(filter), options.Count().SetLimit(1))
		if err != nil {
			return nil, convertToStatusError(c.name, err)
		}
		return &database.UpdateResult{ModifiedCount: n}, nil
	}
	var matched int64
	for i, batch := range splitUpdate(update) {
		ret, err := c.col.UpdateOne(ctx, getCondition(filter), getUpdate(batch))
		if err != nil {
			return nil, convertToStatusError(c.name, err)
		}
		if i == 0 {
			matched = ret.MatchedCount
		}
		if ret.MatchedCount == 0 {
			break
		}
	}
	return &database.UpdateResult{ModifiedCount: matched}, nil
}

// CountDocuments count documents
func (c *collection) CountDocuments(ctx context.Context, query database.Query) (int64, error) {
	ret, err := c.col.CountDocuments(ctx, getCondition(query))
	if err != nil {
		return 0, status.Errorf(codes.Internal, "count %s error %s", c.name, err)
	}
	return ret, nil
}

// Aggregate runs the pipeline on the server.
func (c *collection) Aggregate(ctx context.Context, pipeline database.Pipeline) ([]database.Document, error) {
	cur, err := c.col.Aggregate(ctx, mongo.Pipeline(pipeline))
	if err != nil {
		return nil, convertToStatusError(c.name, err)
	}
	return c.decodeAll(ctx, cur)
}

func (c *collection) decodeAll(ctx context.Context, cur *mongo.Cursor) ([]database.Document, error) {
	var rows []bson.M
	if err := cur.All(ctx, &rows); err != nil {
		return nil, convertToStatusError(c.name, err)
	}
	docs := make([]database.Document, len(rows))
	for i, row := range rows {
		docs[i] = fromBSON(row)
	}
	return docs, nil
}
